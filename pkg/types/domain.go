package types

// Domain tags one interpretation category
type Domain int

const (
	// DomainNone means no domain was forced
	DomainNone Domain = iota
	DomainNumber
	DomainTimestamp
	DomainDuration
	DomainByteSize
	DomainColor
	DomainPermission
)

// Domains lists every real domain in dispatch order
var Domains = []Domain{
	DomainNumber,
	DomainTimestamp,
	DomainDuration,
	DomainByteSize,
	DomainColor,
	DomainPermission,
}

// String returns the display label of the domain
func (d Domain) String() string {
	switch d {
	case DomainNumber:
		return "Number"
	case DomainTimestamp:
		return "Timestamp"
	case DomainDuration:
		return "Duration"
	case DomainByteSize:
		return "Byte Size"
	case DomainColor:
		return "Color"
	case DomainPermission:
		return "Permission"
	default:
		return "None"
	}
}

// Command returns the subcommand name used to force the domain
func (d Domain) Command() string {
	switch d {
	case DomainNumber:
		return "number"
	case DomainTimestamp:
		return "time"
	case DomainDuration:
		return "duration"
	case DomainByteSize:
		return "size"
	case DomainColor:
		return "color"
	case DomainPermission:
		return "permission"
	default:
		return ""
	}
}

// MarshalText encodes the domain by its display label
func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
