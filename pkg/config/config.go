package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log        LogConfig
	University UniversityConfig
	Contact    ContactConfig
	Reports    ReportsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// UniversityConfig describes the registry being built.
type UniversityConfig struct {
	Name   string
	IDSeed int
}

// ContactConfig supplies contact fallbacks for people registered without one.
type ContactConfig struct {
	Email string
	Phone string
}

// ReportsConfig tunes report rendering.
type ReportsConfig struct {
	Format string
	Title  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.University = UniversityConfig{
		Name:   v.GetString("UNIVERSITY_NAME"),
		IDSeed: v.GetInt("ID_SEED"),
	}

	cfg.Contact = ContactConfig{
		Email: v.GetString("DEFAULT_CONTACT_EMAIL"),
		Phone: v.GetString("DEFAULT_CONTACT_PHONE"),
	}

	cfg.Reports = ReportsConfig{
		Format: strings.ToLower(strings.TrimSpace(v.GetString("REPORT_FORMAT"))),
		Title:  v.GetString("REPORT_TITLE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.University.IDSeed < 1 {
		return fmt.Errorf("ID_SEED must be positive, got %d", c.University.IDSeed)
	}
	switch c.Reports.Format {
	case "csv", "pdf":
	default:
		return fmt.Errorf("REPORT_FORMAT must be csv or pdf, got %q", c.Reports.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("UNIVERSITY_NAME", "Open University")
	v.SetDefault("ID_SEED", 1)

	v.SetDefault("DEFAULT_CONTACT_EMAIL", "info@university.com")
	v.SetDefault("DEFAULT_CONTACT_PHONE", "+380955555555")

	v.SetDefault("REPORT_FORMAT", "csv")
	v.SetDefault("REPORT_TITLE", "Group roster")
}
