package config

import (
	_ "embed"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/logging"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "GUESS_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Load reads the defaults, applies environment overrides and validates
// the result.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Compiled-in defaults
	defaults, err := parseDefaults()
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 3. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	// 4. Validate
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Float64("humanMin", cfg.Number.HumanMin).
		Bool("humanThousands", cfg.Number.HumanThousands).
		Int("minYear", cfg.Timestamp.MinYear).
		Int("maxYear", cfg.Timestamp.MaxYear).
		Uint64("minByteCount", cfg.ByteSize.MinCount).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

func parseDefaults() (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := toml.Unmarshal(defaultConfig, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to parse embedded defaults")
	}
	return m, nil
}

// envKey maps GUESS_BYTESIZE_MIN_COUNT to bytesize.min_count: the first
// segment is the section, the rest is the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, ok := strings.Cut(key, "_")
	if !ok || name == "" {
		return ""
	}
	return section + "." + name
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges and returns a CONFIG_INVALID error naming
// the first offending fields.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
		}
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid configuration: %s", strings.Join(fields, ", ")).
			WithDetail("fields", fields)
	}
	return nil
}
