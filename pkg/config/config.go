// Package config loads guess settings from compiled-in defaults and
// GUESS_* environment variables.
package config

import (
	"github.com/arthur-debert/guess/pkg/interpreters"
)

// Config is the full configuration tree
type Config struct {
	Number    NumberConfig    `koanf:"number"`
	Timestamp TimestampConfig `koanf:"timestamp"`
	ByteSize  ByteSizeConfig  `koanf:"bytesize"`
	Output    OutputConfig    `koanf:"output"`
}

// NumberConfig holds thresholds for number variants
type NumberConfig struct {
	HumanMin float64 `koanf:"human_min" validate:"gte=0"`
	HumanMax float64 `koanf:"human_max" validate:"gtefield=HumanMin"`
	// HumanThousands enables "250 thousand" style words below one million
	HumanThousands bool    `koanf:"human_thousands"`
	ScientificMin  float64 `koanf:"scientific_min" validate:"gte=0"`
}

// TimestampConfig holds the plausible year range for unforced input
type TimestampConfig struct {
	MinYear int `koanf:"min_year" validate:"gte=1900,lte=2100"`
	MaxYear int `koanf:"max_year" validate:"gtefield=MinYear,lte=2100"`
}

// ByteSizeConfig holds the smallest bare count treated as a size
type ByteSizeConfig struct {
	MinCount uint64 `koanf:"min_count"`
}

// OutputConfig selects the default output format
type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=auto term terminal text json yaml xml"`
}

// Settings converts the thresholds for the interpreters
func (c *Config) Settings() interpreters.Settings {
	return interpreters.Settings{
		HumanMin:       c.Number.HumanMin,
		HumanMax:       c.Number.HumanMax,
		HumanThousands: c.Number.HumanThousands,
		ScientificMin:  c.Number.ScientificMin,
		MinYear:        c.Timestamp.MinYear,
		MaxYear:        c.Timestamp.MaxYear,
		MinByteCount:   c.ByteSize.MinCount,
	}
}
