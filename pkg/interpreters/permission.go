package interpreters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// MaxPermission is the largest 9-bit mode, 0o777
const MaxPermission = 0o777

// Mode is a 9-bit unix permission mask
type Mode uint16

// Symbolic returns the "rwxr-xr-x" form
func (m Mode) Symbolic() string {
	const letters = "rwxrwxrwx"
	b := []byte("---------")
	for i := 0; i < 9; i++ {
		if m&(1<<(8-i)) != 0 {
			b[i] = letters[i]
		}
	}
	return string(b)
}

// Octal returns the "0o755" form
func (m Mode) Octal() string {
	return fmt.Sprintf("0o%03o", uint16(m))
}

// Breakdown spells out the bits per category
func (m Mode) Breakdown() string {
	categories := []string{"owner", "group", "others"}
	parts := make([]string, 0, len(categories))
	for i, name := range categories {
		bits := (uint16(m) >> (3 * (2 - i))) & 0o7
		var perms []string
		if bits&4 != 0 {
			perms = append(perms, "read")
		}
		if bits&2 != 0 {
			perms = append(perms, "write")
		}
		if bits&1 != 0 {
			perms = append(perms, "execute")
		}
		if len(perms) == 0 {
			perms = []string{"none"}
		}
		parts = append(parts, name+": "+strings.Join(perms, ", "))
	}
	return strings.Join(parts, ", ")
}

// ParsePermission reads a mode from octal, symbolic or decimal notation
func ParsePermission(h recognizer.Hints) (Mode, string, bool) {
	s := h.Normalized

	if h.SymbolicPermission {
		var m Mode
		for i := 0; i < 9; i++ {
			if s[i] != '-' {
				m |= 1 << (8 - i)
			}
		}
		return m, "symbolic", true
	}

	switch h.Prefix {
	case recognizer.PrefixOctal:
		if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
			return 0, "", false
		}
		return parseOctalMode(s[2:])
	case recognizer.PrefixLeadingZero:
		return parseOctalMode(s[1:])
	}

	if !h.Integer || h.Negative || strings.HasPrefix(s, "+") {
		return 0, "", false
	}
	if h.Digits == 3 && strings.Trim(s, "01234567") == "" {
		return parseOctalMode(s)
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n > MaxPermission {
		return 0, "", false
	}
	return Mode(n), "decimal", true
}

func parseOctalMode(digits string) (Mode, string, bool) {
	n, err := strconv.ParseUint(digits, 8, 16)
	if err != nil || n > MaxPermission {
		return 0, "", false
	}
	return Mode(n), "octal", true
}

// Permission builds the permission interpreter
func Permission() Interpreter {
	return Interpreter{
		Domain: types.DomainPermission,
		CanInterpret: func(_ string, h recognizer.Hints) bool {
			_, _, ok := ParsePermission(h)
			return ok
		},
		Interpret: single(types.DomainPermission, func(_ string, h recognizer.Hints) (types.Interpretation, bool) {
			m, source, ok := ParsePermission(h)
			if !ok {
				return types.Interpretation{}, false
			}
			return types.Interpretation{
				Domain:    types.DomainPermission,
				Source:    source,
				Value:     m,
				Canonical: m.Octal(),
				Variants:  PermissionVariants(m),
			}, true
		}),
		Prefer: []string{"symbolic"},
	}
}

// PermissionVariants renders m symbolically, in octal, in decimal and
// spelled out per category.
func PermissionVariants(m Mode) []types.Variant {
	var out variants
	out.add("symbolic", m.Symbolic())
	out.add("octal", m.Octal())
	out.add("decimal", strconv.Itoa(int(m)))
	out.add("breakdown", m.Breakdown())
	return out
}
