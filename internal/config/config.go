package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	LogLevel    string
	AppName     string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		AppName:     v.GetString("APP_NAME"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppName == "" {
		cfg.AppName = "FarmTech Solutions"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("APP_ENV must be development, production or test, got %q", cfg.Environment)
	}
	return nil
}
