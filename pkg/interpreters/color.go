package interpreters

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// RGB is a color as three 8-bit channels
type RGB struct {
	R, G, B uint8
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the "#rrggbb" form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	reRGBArgs = regexp.MustCompile(`(?i)^rgb\(\s*([^,\s]+)\s*,\s*([^,\s]+)\s*,\s*([^,\s]+)\s*\)$`)
	reHSLArgs = regexp.MustCompile(`(?i)^hsl\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%?\s*,\s*(\d+(?:\.\d+)?)%?\s*\)$`)
	reTriple  = regexp.MustCompile(`^(\d{1,3})(?:\s*,\s*|\s+)(\d{1,3})(?:\s*,\s*|\s+)(\d{1,3})$`)
)

// ParseColor reads an RGB value from recognized color syntax. A bare
// triple is only read when the domain was forced.
func ParseColor(h recognizer.Hints) (RGB, string, bool) {
	s := h.Normalized
	switch h.Color {
	case recognizer.ColorHex:
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return RGB{}, "", false
		}
		r, g, b := c.RGB255()
		return RGB{r, g, b}, "hex", true
	case recognizer.ColorRGB:
		c, ok := parseRGBCall(s)
		return c, "rgb", ok
	case recognizer.ColorHSL:
		c, ok := parseHSLCall(s)
		return c, "hsl", ok
	case recognizer.ColorName:
		named, ok := recognizer.LookupColor(s)
		return RGB{named.R, named.G, named.B}, "css name", ok
	case recognizer.ColorTriple:
		if !h.Forced {
			return RGB{}, "", false
		}
		c, ok := parseTriple(s)
		return c, "rgb triple", ok
	}
	return RGB{}, "", false
}

// expandShortHex turns "#f00" into "#ff0000"
func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func parseRGBCall(s string) (RGB, bool) {
	m := reRGBArgs.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	args := m[1:]

	percent, fraction := 0, false
	for _, a := range args {
		if strings.HasSuffix(a, "%") {
			percent++
		}
		if strings.Contains(a, ".") {
			fraction = true
		}
	}

	var out [3]uint8
	for i, a := range args {
		var (
			ch uint8
			ok bool
		)
		switch {
		case percent == 3:
			ch, ok = scaleChannel(strings.TrimSuffix(a, "%"), 100)
		case percent > 0:
			return RGB{}, false
		case fraction:
			ch, ok = scaleChannel(a, 1)
		default:
			ch, ok = intChannel(a)
		}
		if !ok {
			return RGB{}, false
		}
		out[i] = ch
	}
	return RGB{out[0], out[1], out[2]}, true
}

// scaleChannel maps a value in [0, max] onto 0-255
func scaleChannel(s string, max float64) (uint8, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > max {
		return 0, false
	}
	return uint8(math.Round(f / max * 255)), true
}

func intChannel(s string) (uint8, bool) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

func parseHSLCall(s string) (RGB, bool) {
	m := reHSLArgs.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	light, _ := strconv.ParseFloat(m[3], 64)
	if h > 360 || sat > 100 || light > 100 {
		return RGB{}, false
	}
	r, g, b := colorful.Hsl(h, sat/100, light/100).Clamped().RGB255()
	return RGB{r, g, b}, true
}

func parseTriple(s string) (RGB, bool) {
	m := reTriple.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	var out [3]uint8
	for i, a := range m[1:] {
		ch, ok := intChannel(a)
		if !ok {
			return RGB{}, false
		}
		out[i] = ch
	}
	return RGB{out[0], out[1], out[2]}, true
}

// Color builds the color interpreter
func Color() Interpreter {
	return Interpreter{
		Domain: types.DomainColor,
		CanInterpret: func(_ string, h recognizer.Hints) bool {
			_, _, ok := ParseColor(h)
			return ok
		},
		Interpret: single(types.DomainColor, func(_ string, h recognizer.Hints) (types.Interpretation, bool) {
			c, source, ok := ParseColor(h)
			if !ok {
				return types.Interpretation{}, false
			}
			return types.Interpretation{
				Domain:    types.DomainColor,
				Source:    source,
				Value:     c,
				Canonical: c.Hex(),
				Variants:  ColorVariants(c),
			}, true
		}),
		Prefer: []string{"hex"},
	}
}

// ColorVariants renders c as hex, rgb(), hsl() and a color name
func ColorVariants(c RGB) []types.Variant {
	var out variants
	out.add("hex", c.Hex())
	out.add("rgb", fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B))
	out.add("hsl", HSL(c))

	if name, ok := recognizer.ColorNameFor(c.R, c.G, c.B); ok {
		out.add("name", name)
	} else {
		out.add("closest name", "~"+ClosestColorName(c))
	}
	return out
}

// HSL returns the "hsl(h, s%, l%)" form with integer components
func HSL(c RGB) string {
	h, s, l := c.toColorful().Hsl()
	hue := int(math.Round(h)) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, int(math.Round(s*100)), int(math.Round(l*100)))
}

// ClosestColorName returns the named color nearest to c in CIE-Lab space
func ClosestColorName(c RGB) string {
	target := c.toColorful()
	best, bestDist := "", math.Inf(1)
	for _, named := range recognizer.NamedColors() {
		d := target.DistanceLab(RGB{named.R, named.G, named.B}.toColorful())
		if d < bestDist {
			best, bestDist = named.Name, d
		}
	}
	return best
}
