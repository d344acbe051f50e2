package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings are the tunable runtime knobs, loaded from an optional yaml
// file with sane defaults for everything.
type Settings struct {
	Client ClientSettings `mapstructure:"client"`
	Cache  CacheSettings  `mapstructure:"cache"`
	Cost   CostSettings   `mapstructure:"cost"`
	Store  StoreSettings  `mapstructure:"store"`
}

type ClientSettings struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	PageSize     int           `mapstructure:"page_size"`
	MaxPages     int           `mapstructure:"max_pages"`
	MaxNodes     int           `mapstructure:"max_nodes"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
}

type CacheSettings struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type CostSettings struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	ProductCostRatio    float64 `mapstructure:"product_cost_ratio"`
	ServiceCostRatio    float64 `mapstructure:"service_cost_ratio"`
}

type StoreSettings struct {
	Path string `mapstructure:"path"`
}

func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.timeout", 30*time.Second)
	v.SetDefault("client.page_size", 100)
	v.SetDefault("client.max_pages", 50)
	v.SetDefault("client.max_nodes", 5000)
	v.SetDefault("client.max_attempts", 5)
	v.SetDefault("client.initial_delay", time.Second)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cost.similarity_threshold", 0.8)
	v.SetDefault("cost.product_cost_ratio", 0.5)
	v.SetDefault("cost.service_cost_ratio", 0.35)
	v.SetDefault("store.path", "")
}
