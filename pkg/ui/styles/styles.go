// Package styles holds the lipgloss styles used by the terminal renderer.
//
// The palette and the style sheet live in the embedded styles.yaml. Colors
// are adaptive, so every entry carries a light and a dark variant.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names known to the renderers
const (
	Heading      = "Heading"
	Source       = "Source"
	Value        = "Value"
	VariantLabel = "VariantLabel"
	Error        = "Error"
	Suggestion   = "Suggestion"
	Muted        = "Muted"
)

// Names lists every style the renderers look up
var Names = []string{Heading, Source, Value, VariantLabel, Error, Suggestion, Muted}

// ColorDef is one palette entry
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one style sheet entry. Foreground and Background name
// palette entries.
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Sheet is the decoded styles.yaml
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps style names to built lipgloss styles
var StyleRegistry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		StyleRegistry = map[string]lipgloss.Style{}
	}
}

// LoadStylesFromData replaces the registry with the sheet decoded from data.
// The registry is left untouched on error.
func LoadStylesFromData(data []byte) error {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	registry := make(map[string]lipgloss.Style, len(sheet.Styles))
	for name, def := range sheet.Styles {
		registry[name] = def.build(sheet.Colors)
	}
	StyleRegistry = registry
	return nil
}

func (def StyleDef) build(palette map[string]ColorDef) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		PaddingLeft(def.PaddingLeft)

	if c, ok := palette[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
	}
	if c, ok := palette[def.Background]; ok {
		style = style.Background(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
	}
	return style
}

// GetStyle returns the named style, or an empty style when unknown
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Swatch renders a four-cell block painted with the given hex color
func Swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("    ")
}
