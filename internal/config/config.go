package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dreaming-migrate/internal/domain"
)

// Config holds one migration run's settings. Every flag can also be supplied
// through a DREAMING_* environment variable (flag wins when both are set),
// which keeps tokens out of shell history.
type Config struct {
	SourceToken    string
	TargetToken    string
	SourceLanguage domain.Language
	TargetLanguage domain.Language
	BaseURL        string
	Execute        bool
}

// Load resolves configuration from the parsed flag set layered over
// DREAMING_* environment variables.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DREAMING")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	cfg := Config{
		SourceToken:    v.GetString("source-token"),
		TargetToken:    v.GetString("target-token"),
		SourceLanguage: domain.Language(v.GetString("source-language")),
		TargetLanguage: domain.Language(v.GetString("target-language")),
		BaseURL:        v.GetString("base-url"),
		Execute:        v.GetBool("execute"),
	}

	if cfg.SourceToken == "" {
		return cfg, errors.New("source token is required (--source-token or DREAMING_SOURCE_TOKEN)")
	}
	if cfg.TargetToken == "" {
		return cfg, errors.New("target token is required (--target-token or DREAMING_TARGET_TOKEN)")
	}
	if !cfg.SourceLanguage.Valid() {
		return cfg, errors.New("source language must be one of: es, fr")
	}
	if !cfg.TargetLanguage.Valid() {
		return cfg, errors.New("target language must be one of: es, fr")
	}
	return cfg, nil
}
