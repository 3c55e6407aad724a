package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Portfolio PortfolioConfig `mapstructure:"portfolio"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type PortfolioConfig struct {
	// DataFile is the JSON document holding the holdings, an array of flat
	// objects or an object wrapping such an array.
	DataFile string `mapstructure:"dataFile"`
	// CacheTTLSeconds keeps the parsed dataset in memory for that long.
	// Zero loads the file fresh on every request.
	CacheTTLSeconds int `mapstructure:"cacheTTLSeconds"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads appsettings.yaml from path, merging appsettings.<env>.yaml
// on top when env is set.
func LoadConfig(path, env string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}
	if env != "" {
		v.SetConfigName("appsettings." + env)
		if err := v.MergeInConfig(); err != nil {
			return nil, err
		}
	}
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
