// Package recognizer reads the syntactic shape of an input token. It never
// fails: it only reports which patterns the token matches so the
// interpreters and the dispatcher can decide what it could mean.
package recognizer

import (
	"strings"

	"github.com/arthur-debert/guess/pkg/types"
)

// Prefix is the numeric base marker found on an input
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixHex
	PrefixBinary
	PrefixOctal
	// PrefixLeadingZero is a bare 0 followed by two or three octal digits
	PrefixLeadingZero
)

// ColorSyntax is the color notation found on an input
type ColorSyntax int

const (
	ColorNone ColorSyntax = iota
	ColorHex
	ColorRGB
	ColorHSL
	ColorName
	// ColorTriple is a bare "r g b" triple, only meaningful when forced
	ColorTriple
)

// Hints is the recognizer's report on one input
type Hints struct {
	// Normalized is the trimmed, width-folded input
	Normalized string
	// Folded is Normalized after case folding
	Folded string

	Prefix     Prefix
	Scientific bool

	DurationUnits bool
	// ByteUnit is the display form of a byte-size unit, e.g. "GiB"
	ByteUnit string

	Date    bool
	ISO8601 bool

	Color              ColorSyntax
	SymbolicPermission bool

	Integer  bool
	Negative bool
	// Digits counts decimal digits of an integer-shaped input, sign excluded
	Digits int

	// Forced is set by the dispatcher when the user chose the domain
	Forced bool
}

// Recognize inspects raw and reports every pattern it matches
func Recognize(raw string) Hints {
	s := Normalize(raw)
	h := Hints{Normalized: s, Folded: Fold(s)}
	if s == "" {
		return h
	}

	if m := reInteger.FindStringSubmatch(s); m != nil {
		h.Integer = true
		h.Negative = m[1] == "-"
		h.Digits = len(m[2])
	}

	if reScientific.MatchString(s) {
		h.Scientific = true
	} else if m := reBasePrefix.FindStringSubmatch(s); m != nil {
		switch strings.ToLower(m[1]) {
		case "x":
			h.Prefix = PrefixHex
		case "b":
			h.Prefix = PrefixBinary
		case "o":
			h.Prefix = PrefixOctal
		}
	} else if reLeadZero.MatchString(s) {
		h.Prefix = PrefixLeadingZero
	}

	if reDuration.MatchString(h.Folded) {
		h.DurationUnits = true
	}
	if m := reByteSize.FindStringSubmatch(h.Folded); m != nil {
		h.ByteUnit = byteUnits[m[2]]
	}

	h.Date = reDateDash.MatchString(s) || reDateSlash.MatchString(s)
	h.ISO8601 = reISO8601.MatchString(s)

	switch {
	case reHexColor.MatchString(s):
		h.Color = ColorHex
	case reRGBCall.MatchString(s):
		h.Color = ColorRGB
	case reHSLCall.MatchString(s):
		h.Color = ColorHSL
	case IsColorName(s):
		h.Color = ColorName
	case reTriple.MatchString(s):
		h.Color = ColorTriple
	}

	h.SymbolicPermission = reSymbolicPerm.MatchString(s)
	return h
}

// ImpliedDomain returns the single domain the syntax leaves open, or
// DomainNone when the input shape is shared by several domains.
func (h Hints) ImpliedDomain() types.Domain {
	switch {
	case h.SymbolicPermission:
		return types.DomainPermission
	case h.Color != ColorNone && h.Color != ColorTriple:
		return types.DomainColor
	case h.Prefix == PrefixHex, h.Prefix == PrefixBinary, h.Scientific:
		return types.DomainNumber
	case h.DurationUnits:
		return types.DomainDuration
	case h.ByteUnit != "":
		return types.DomainByteSize
	case h.Date, h.ISO8601:
		return types.DomainTimestamp
	}
	return types.DomainNone
}

// Empty reports whether the input had no content after normalization
func (h Hints) Empty() bool {
	return h.Normalized == ""
}
