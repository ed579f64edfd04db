package app

import (
	"time"

	"github.com/asolis/contactbook/app/database"
	"github.com/asolis/contactbook/internal/configloader"
)

type Config struct {
	DB database.Config

	Env      string `env:"APP_ENV" env-default:"development"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info" validate:"oneof=debug info error off"`

	// People update semantics: replace overwrites every field, patch keeps
	// stored values where the request left a field empty.
	PeopleUpdateMode string `env:"PEOPLE_UPDATE_MODE" env-default:"replace" validate:"oneof=replace patch"`

	// Country name uniqueness policy.
	CountryNameTrim            bool `env:"COUNTRY_NAME_TRIM" env-default:"false"`
	CountryNameCaseInsensitive bool `env:"COUNTRY_NAME_CASE_INSENSITIVE" env-default:"false"`

	CacheBackend  string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"5m"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
}

// LoadConfig loads the application configuration from the environment,
// optionally seeded by a local config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := configloader.New(configloader.WithOptionalFile("config.yml")).Load(c)
	return c, err
}
