package interpreters

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

type byteUnit struct {
	size float64
	name string
}

var (
	siUnits = []byteUnit{
		{humanize.PByte, "PB"},
		{humanize.TByte, "TB"},
		{humanize.GByte, "GB"},
		{humanize.MByte, "MB"},
		{humanize.KByte, "KB"},
	}
	iecUnits = []byteUnit{
		{humanize.PiByte, "PiB"},
		{humanize.TiByte, "TiB"},
		{humanize.GiByte, "GiB"},
		{humanize.MiByte, "MiB"},
		{humanize.KiByte, "KiB"},
	}
)

// ParseByteSize reads a byte count from a bare integer or a unit-qualified
// size such as "1.5 GiB".
func ParseByteSize(h recognizer.Hints) (uint64, string, bool) {
	if h.ByteUnit != "" {
		s := h.Folded
		for _, word := range []string{"bytes", "byte"} {
			if strings.HasSuffix(s, word) {
				s = strings.TrimSuffix(s, word) + "b"
				break
			}
		}
		n, err := humanize.ParseBytes(s)
		if err != nil {
			return 0, "", false
		}
		return n, unitSystem(h.ByteUnit), true
	}

	if h.Integer && !h.Negative {
		n, err := strconv.ParseUint(strings.TrimPrefix(h.Normalized, "+"), 10, 64)
		if err != nil {
			return 0, "", false
		}
		return n, "byte count", true
	}
	return 0, "", false
}

func unitSystem(unit string) string {
	switch {
	case unit == "B":
		return "bytes"
	case strings.Contains(unit, "i"):
		return "IEC units"
	default:
		return "SI units"
	}
}

// ByteSize builds the byte-size interpreter
func ByteSize() Interpreter {
	return Interpreter{
		Domain: types.DomainByteSize,
		CanInterpret: func(_ string, h recognizer.Hints) bool {
			_, _, ok := ParseByteSize(h)
			return ok
		},
		Interpret: single(types.DomainByteSize, func(_ string, h recognizer.Hints) (types.Interpretation, bool) {
			n, source, ok := ParseByteSize(h)
			if !ok {
				return types.Interpretation{}, false
			}
			return types.Interpretation{
				Domain:    types.DomainByteSize,
				Source:    source,
				Value:     n,
				Canonical: strconv.FormatUint(n, 10),
				Variants:  ByteSizeVariants(n),
			}, true
		}),
		Prefer: []string{"decimal"},
	}
}

// ByteSizeVariants renders n in SI units, IEC units and as a raw count
func ByteSizeVariants(n uint64) []types.Variant {
	var out variants
	out.add("decimal", scaledBytes(n, siUnits))
	out.add("binary", scaledBytes(n, iecUnits))

	word := "bytes"
	if n == 1 {
		word = "byte"
	}
	out.add("bytes", humanize.BigComma(new(big.Int).SetUint64(n))+" "+word)
	return out
}

// scaledBytes uses the largest unit in which n is at least one
func scaledBytes(n uint64, units []byteUnit) string {
	f := float64(n)
	for _, u := range units {
		if f >= u.size {
			return fmt.Sprintf("%.2f %s", f/u.size, u.name)
		}
	}
	return strconv.FormatUint(n, 10) + " B"
}
