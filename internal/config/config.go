package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Answers  AnswersConfig  `mapstructure:"answers"`
	Decoding DecodingConfig `mapstructure:"decoding"`
}

type AnswersConfig struct {
	// OnInvalid is either "reject" or "skip"
	OnInvalid string `mapstructure:"on_invalid" validate:"required,oneof=reject skip"`
}

type DecodingConfig struct {
	// Strict rejects unknown fields in question definitions
	Strict bool `mapstructure:"strict"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := NewValidator("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gift")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("answers.on_invalid", "reject")
	v.SetDefault("decoding.strict", false)

	if err := v.BindEnv("answers.on_invalid", "GIFT_ON_INVALID"); err != nil {
		return nil, fmt.Errorf("failed to bind GIFT_ON_INVALID environment variable: %w", err)
	}
	if err := v.BindEnv("decoding.strict", "GIFT_STRICT"); err != nil {
		return nil, fmt.Errorf("failed to bind GIFT_STRICT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("loader.validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration from configFile, or from config.yml in the
// current directory or $HOME/.config/gift when configFile is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}
