package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "GAMESHIFT_"

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	// When empty the user config file is used if present.
	ConfigFile string

	// Overrides are applied last, keyed by dotted path ("catalog.path")
	Overrides map[string]interface{}
}

// Load builds the effective configuration: embedded defaults, then the
// user config file, then GAMESHIFT_* environment variables, then overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	configFile, required := opts.ConfigFile, true
	if configFile == "" {
		configFile, required = paths.ConfigFilePath(), false
	}
	configFile = paths.ExpandHome(configFile)
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", configFile)
	}

	// 3. Env vars: GAMESHIFT_CATALOG_BACKUP_SUFFIX -> catalog.backup_suffix
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides (command-line flags)
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps the first underscore after the prefix to the section separator
// and keeps the rest, so multi-word keys survive.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func postProcessConfig(cfg *Config) error {
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = paths.DefaultCatalogPath()
	} else {
		cfg.Catalog.Path = paths.ExpandHome(cfg.Catalog.Path)
	}

	required := []struct{ key, val string }{
		{"catalog.backup_suffix", cfg.Catalog.BackupSuffix},
		{"catalog.table", cfg.Catalog.Table},
		{"catalog.id_column", cfg.Catalog.IDColumn},
		{"catalog.title_column", cfg.Catalog.TitleColumn},
		{"catalog.path_column", cfg.Catalog.PathColumn},
		{"layout.aux_dir_name", cfg.Layout.AuxDirName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return errors.New(errors.ErrConfigParse, fmt.Sprintf("%s must not be empty", r.key)).
				WithDetail("key", r.key)
		}
	}

	dests := cfg.Destinations[:0]
	for _, d := range cfg.Destinations {
		if d = strings.TrimSpace(d); d != "" {
			dests = append(dests, d)
		}
	}
	cfg.Destinations = dests

	return nil
}
