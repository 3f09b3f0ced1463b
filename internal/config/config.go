// Package config loads server configuration from an optional config file
// and the environment.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Addr             string `mapstructure:"addr"`
	RedisAddr        string `mapstructure:"redis_addr"`
	DatabaseURL      string `mapstructure:"database_url"`
	JWTSecret        string `mapstructure:"jwt_secret"`
	BarcodeTablePath string `mapstructure:"barcode_table"`

	SMTPServer       string `mapstructure:"smtp_server"`
	SMTPPort         string `mapstructure:"smtp_port"`
	SMTPUser         string `mapstructure:"smtp_user"`
	SMTPPassword     string `mapstructure:"smtp_pass"`
	AlertFrom        string `mapstructure:"alert_from"`
	SMTPAuthDisabled bool   `mapstructure:"smtp_auth_disabled"`
}

// Load reads config.yaml from the working directory when present and lets
// environment variables (ADDR, REDIS_ADDR, DATABASE_URL, ...) override it.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("barcode_table", "")
	v.SetDefault("smtp_port", "587")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
