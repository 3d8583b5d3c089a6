// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/csg33k/semogye/internal/domain"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port             string `validate:"required,numeric"`
	DBPath           string `validate:"required"`
	SiteURL          string `validate:"required,http_url"`
	TaxYear          int    `validate:"gte=2000,lte=2100"`
	WithholdingTable string `validate:"omitempty,file"`
	PDFFont          string `validate:"omitempty,file"`
	LogLevel         string `validate:"oneof=debug info warn error"`
	LogFormat        string `validate:"oneof=text json"`
}

func Default() Config {
	return Config{
		Port:      "8080",
		DBPath:    "semogye.db",
		SiteURL:   "https://semogye.com",
		TaxYear:   domain.DefaultTaxYear,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads .env when present, then the environment, then validates.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over Default.
func FromEnv() (Config, error) {
	c := Default()
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	str("PORT", &c.Port)
	str("DB_PATH", &c.DBPath)
	str("SITE_URL", &c.SiteURL)
	str("WITHHOLDING_TABLE", &c.WithholdingTable)
	str("PDF_FONT", &c.PDFFont)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")

	if v := strings.TrimSpace(os.Getenv("TAX_YEAR")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: TAX_YEAR %q: %v", ErrInvalidConfig, v, err)
		}
		c.TaxYear = y
	}
	return c, c.Validate()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }
