package configloader

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Loader reads configuration into a struct from an optional file plus the
// environment, then validates the result. Environment values win over
// file values, matching cleanenv precedence.
type Loader struct {
	fileName string
	validate *validator.Validate
}

// Option is a functional option for configuring the loader.
type Option func(*Loader)

// WithFile points the loader at a config file (yaml/json/toml/env by
// extension). A missing file is an error; use WithOptionalFile when the
// file may be absent.
func WithFile(name string) Option {
	return func(l *Loader) {
		l.fileName = name
	}
}

// WithOptionalFile uses the file only when it exists.
func WithOptionalFile(name string) Option {
	return func(l *Loader) {
		if _, err := os.Stat(name); err == nil {
			l.fileName = name
		}
	}
}

// New returns a Loader configured by opts.
func New(opts ...Option) *Loader {
	l := &Loader{validate: validator.New()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load populates target and validates it against its `validate` tags.
func (l *Loader) Load(target interface{}) error {
	if l.fileName != "" {
		if err := cleanenv.ReadConfig(l.fileName, target); err != nil {
			return fmt.Errorf("read config file %q: %w", l.fileName, err)
		}
	} else if err := cleanenv.ReadEnv(target); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if err := l.validate.Struct(target); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
