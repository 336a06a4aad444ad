package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/arthur-debert/pkgflag/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PKGFLAG_"

// Options selects the sources layered over the embedded defaults.
type Options struct {
	// Path is an explicit config file. It must exist. When empty, the
	// file at UserConfigPath is used if present.
	Path string
	// Overrides are dotted keys applied last, e.g. "paths.config_root".
	Overrides map[string]interface{}
}

// UserConfigPath returns the per-user configuration file location.
func UserConfigPath() string {
	return paths.ConfigFile()
}

// Load reads the configuration from every source and validates it.
func Load(opts Options) (*Config, error) {
	cfg, err := load(&opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(opts *Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	if opts == nil {
		return unmarshal(k)
	}

	// 2. User file
	path, explicit := opts.Path, opts.Path != ""
	if explicit {
		normalized, err := paths.Normalize(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "invalid config path %s", path)
		}
		path = normalized
	} else {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimSpaceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Paths.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// trimSpaceHookFunc trims string values, which arrive untouched from
// environment variables.
func trimSpaceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

// normalize expands ~ and environment variables in every configured path.
func (p *Paths) normalize() error {
	for _, field := range []*string{&p.ConfigRoot, &p.Repository, &p.Catalog} {
		normalized, err := paths.Normalize(*field)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid path %s", *field)
		}
		*field = normalized
	}
	return nil
}
