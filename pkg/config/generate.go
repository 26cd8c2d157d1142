package config

import (
	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders the effective configuration as a TOML document
func ToTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
