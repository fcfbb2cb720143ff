package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIOrigin       string `env:"API_ORIGIN" envDefault:"http://localhost:5000"`
	LocalStorePath  string `env:"LOCAL_STORE_PATH" envDefault:"/data/localstorage.db"`
	PhotoExportPath string `env:"PHOTO_EXPORT_PATH" envDefault:"/data/photos"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile         string `env:"LOG_FILE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
