package types

// Variant is one labeled plain-text rendering of an interpretation's value
type Variant struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Interpretation is one domain's verdict on an input
type Interpretation struct {
	Domain Domain `json:"domain" yaml:"domain"`

	// Source describes how the input was read, e.g. "hex" or "unix seconds"
	Source string `json:"source" yaml:"source"`

	// Value is the typed canonical value; its type depends on Domain
	Value any `json:"-" yaml:"-"`

	// Canonical is a stable string form of Value
	Canonical string `json:"canonical" yaml:"canonical"`

	Variants []Variant `json:"variants" yaml:"variants"`
}

// Label returns the heading used when displaying the interpretation
func (i Interpretation) Label() string {
	if i.Source == "" {
		return i.Domain.String()
	}
	return i.Domain.String() + " (from " + i.Source + ")"
}

// Variant returns the variant with the given label
func (i Interpretation) Variant(label string) (Variant, bool) {
	for _, v := range i.Variants {
		if v.Label == label {
			return v, true
		}
	}
	return Variant{}, false
}

// Representative returns the first variant whose label appears in prefer,
// falling back to the first variant.
func (i Interpretation) Representative(prefer []string) Variant {
	for _, label := range prefer {
		if v, ok := i.Variant(label); ok {
			return v
		}
	}
	if len(i.Variants) == 0 {
		return Variant{}
	}
	return i.Variants[0]
}

// Truncate returns a copy of the interpretation holding only v
func (i Interpretation) Truncate(v Variant) Interpretation {
	i.Variants = []Variant{v}
	return i
}
