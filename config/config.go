// Package config loads the form pipeline configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/JoaoLuiz92/dependente-plan-form/form"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

var defaultEnvLoaded sync.Once

// Config carries every tunable of the submission pipeline. All values are
// read once at startup and treated as read-only afterwards.
type Config struct {
	// APIURL is the webhook endpoint submissions are POSTed to.
	APIURL string `env:"FORM_API_URL,required"`

	AppName    string `env:"FORM_APP_NAME" envDefault:"dependente-plan-form"`
	AppVersion string `env:"FORM_APP_VERSION" envDefault:"1.0.0"`

	MaxDependents     int           `env:"FORM_MAX_DEPENDENTES" envDefault:"20"`
	RateLimitWindow   time.Duration `env:"FORM_RATE_LIMIT_WINDOW" envDefault:"30s"`
	MaxStringLength   int           `env:"FORM_MAX_STRING_LENGTH" envDefault:"255"`
	MaxPhoneLength    int           `env:"FORM_MAX_PHONE_LENGTH" envDefault:"11"`
	MaxDocumentLength int           `env:"FORM_MAX_DOCUMENT_LENGTH" envDefault:"20"`

	AllowedOrigins []string `env:"FORM_ALLOWED_ORIGINS" envDefault:"https://dependente-plan-form.vercel.app"`

	// RedisURL, when set, makes the rate-limit timestamp durable across
	// processes. Empty means in-memory storage.
	RedisURL string `env:"FORM_REDIS_URL"`

	LogFormat string `env:"FORM_LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded once per process if present; its absence is
// not an error.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// Limits derives the assembly and validation bounds from the configuration.
func (c Config) Limits() form.Limits {
	return form.Limits{
		MaxDependents:  c.MaxDependents,
		MaxStringLen:   c.MaxStringLength,
		MaxPhoneLen:    c.MaxPhoneLength,
		MaxDocumentLen: c.MaxDocumentLength,
	}
}

// ValidOrigin reports whether origin is in the allowed set.
func (c Config) ValidOrigin(origin string) bool {
	return slices.Contains(c.AllowedOrigins, origin)
}
