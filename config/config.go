package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Theme   Theme   `json:"theme" yaml:"theme" mapstructure:"theme"`
	Stats   Stats   `json:"stats" yaml:"stats" mapstructure:"stats"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Theme is the initial display mode. It is watched for changes while serving.
type Theme struct {
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode" validate:"omitempty,oneof=light dark"`
}

// Stats configures which statistics are computed and how often the collection is reloaded
type Stats struct {
	Kinds           []string          `json:"kinds" yaml:"kinds" mapstructure:"kinds"`
	Triggers        map[string]string `json:"triggers" yaml:"triggers" mapstructure:"triggers" validate:"dive,oneof=first-load-then-filter combine-latest"`
	RefreshInterval time.Duration     `json:"refreshInterval" yaml:"refreshInterval" mapstructure:"refreshInterval" validate:"gte=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

var validate = validator.New()

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration is usable for serving
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
