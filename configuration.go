package main

import (
	"errors"
	"io/fs"

	"contact-manager/app"
	"contact-manager/appinterface"
	"contact-manager/logger"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Strategy string                 `toml:"strategy"`
	Log      logger.Options         `toml:"log"`
	Contacts []appinterface.Contact `toml:"contacts"`
}

// loadConfig reads path into a Config. A missing file is not an error and
// yields the defaults.
func loadConfig(path string) (config *Config, err error) {
	config = &Config{}
	_, err = toml.DecodeFile(path, config)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if config.Strategy == "" {
		config.Strategy = app.ExactNameStrategy
	}

	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}

	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	return config, nil
}
