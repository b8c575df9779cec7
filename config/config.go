// Package config loads CLI defaults from an optional jsig.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/jsig/format"
	"github.com/go-playground/validator/v10"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "jsig.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Scan   ScanConfig   `toml:"scan"`
}

type OutputConfig struct {
	Format string `toml:"format" validate:"outputformat"`
}

// LogConfig is passed to commonlog.Configure. An empty File logs to stderr.
type LogConfig struct {
	Verbosity int    `toml:"verbosity" validate:"gte=0,lte=7"`
	File      string `toml:"file"`
}

type ScanConfig struct {
	References bool `toml:"references"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "line"},
	}
}

// Load reads the TOML file at path. Keys the file sets override the
// defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.Log.File = os.ExpandEnv(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultFile if it exists and returns Default otherwise.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultFile); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultFile)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("toml")
	})
	v.RegisterValidation("outputformat", func(fl validator.FieldLevel) bool {
		return format.IsFormat(fl.Field().String())
	})
	return v
}

// Validate reports every invalid setting, naming each by its TOML key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		key := strings.TrimPrefix(ve.Namespace(), "Config.")
		messages = append(messages, key+" "+formatValidationError(ve))
	}
	return errors.New(strings.Join(messages, "; "))
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "outputformat":
		return fmt.Sprintf("%q is not one of %s", ve.Value(), strings.Join(format.Formats, ", "))
	case "gte":
		return fmt.Sprintf("%v must be at least %s", ve.Value(), ve.Param())
	case "lte":
		return fmt.Sprintf("%v must be at most %s", ve.Value(), ve.Param())
	}
	return fmt.Sprintf("failed %s validation", ve.Tag())
}
