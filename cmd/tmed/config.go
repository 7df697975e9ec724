package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds tmed settings loaded from the environment.
type Config struct {
	Addr           string        `envconfig:"TMED_ADDR" default:":8080"`
	BaseURL        string        `envconfig:"TMED_BASE_URL" default:"https://t.me"`
	ProfileTimeout time.Duration `envconfig:"TMED_PROFILE_TIMEOUT" default:"5s"`
	ListTimeout    time.Duration `envconfig:"TMED_LIST_TIMEOUT" default:"10s"`
	RPS            float64       `envconfig:"TMED_RPS" default:"0"`
	LogLevel       string        `envconfig:"TMED_LOG_LEVEL" default:"info"`
}

// loadConfig reads the configuration from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
