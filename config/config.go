// Package config loads the YAML configuration of the maze solver: the role
// weights used when building graphs and the logger settings.
//
//	weights:
//	  bonus: 1      # 0..1, subtracted when entering a Reward
//	  penalty: 2    # >= 0, added when entering an Enemy
//	log:
//	  level: info   # debug|info|warn|error
//	  format: text  # text|json
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance reporting yaml key names.
var validate = newValidator()

// Config is the root of the configuration file.
type Config struct {
	Weights Weights `yaml:"weights"`
	Log     Log     `yaml:"log"`
}

// Weights are the role adjustments applied to graph edges.
type Weights struct {
	Bonus   int64 `yaml:"bonus" validate:"min=0,max=1"`
	Penalty int64 `yaml:"penalty" validate:"min=0"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Weights: Weights{Bonus: 1, Penalty: 2},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints and reports the
// first violation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationError converts validator errors into ErrInvalidConfig
// with the offending yaml key.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	e := validationErrs[0]
	_, key, _ := strings.Cut(e.Namespace(), ".")
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s, got %v", ErrInvalidConfig, key, e.Param(), e.Value())
	case "max":
		return fmt.Errorf("%w: %s: must not exceed %s, got %v", ErrInvalidConfig, key, e.Param(), e.Value())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %q", ErrInvalidConfig, key, e.Param(), e.Value())
	default:
		return fmt.Errorf("%w: %s: failed %s validation", ErrInvalidConfig, key, e.Tag())
	}
}
