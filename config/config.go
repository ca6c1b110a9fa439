package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// UpstreamConfig points at the salon REST backend the engine projects from.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host           string
	Port           string
	Password       string
	DB             int
	ClientCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	upstreamTimeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		upstreamTimeout = 20 * time.Second
	}

	clientCacheTTL, err := time.ParseDuration(viper.GetString("CLIENT_CACHE_TTL"))
	if err != nil {
		clientCacheTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: upstreamTimeout,
		},
		Redis: RedisConfig{
			Host:           viper.GetString("REDIS_HOST"),
			Port:           viper.GetString("REDIS_PORT"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			DB:             viper.GetInt("REDIS_DB"),
			ClientCacheTTL: clientCacheTTL,
		},
	}

	return config, nil
}
