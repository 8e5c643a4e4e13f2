package interpreters

import "github.com/arthur-debert/guess/pkg/types"

// Example is a sample input that one domain recognizes
type Example struct {
	Domain      types.Domain
	Input       string
	Description string
}

var examples = []Example{
	{types.DomainTimestamp, "1722628800", "unix timestamp in seconds"},
	{types.DomainDuration, "1h30m", "duration with unit suffixes"},
	{types.DomainByteSize, "1.5 GiB", "size with a decimal or binary unit"},
	{types.DomainNumber, "0xFF", "hex, binary, octal or scientific number"},
	{types.DomainColor, "#ff5733", "hex, rgb(), hsl() or named color"},
	{types.DomainPermission, "rwxr-xr-x", "symbolic or octal file mode"},
}

// Examples returns one sample input per domain
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}
