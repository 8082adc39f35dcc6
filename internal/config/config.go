package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/joelmoss/nclu/internal/errs"
	"github.com/joelmoss/nclu/internal/nclu"
)

// EnvPath overrides the default config location.
const EnvPath = "NCLU_CONFIG"

// Settings is the content of the config file.
type Settings struct {
	NetPath     string            `toml:"net_path" validate:"required"`
	Description string            `toml:"description,omitempty"`
	Vars        map[string]string `toml:"vars,omitempty"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() *Settings {
	return &Settings{NetPath: nclu.DefaultBinary}
}

// Config manages the nclu configuration stored at ~/.config/nclu/config.toml.
type Config struct {
	path string
}

// New creates a Config. If configPath is empty, NCLU_CONFIG or the default
// location is used.
func New(configPath string) *Config {
	if configPath == "" {
		configPath = os.Getenv(EnvPath)
	}
	if configPath == "" {
		home, _ := os.UserHomeDir()
		configPath = filepath.Join(home, ".config", "nclu", "config.toml")
	}
	return &Config{path: configPath}
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// Load reads and validates the config, or returns Defaults if the file
// doesn't exist.
func (c *Config) Load() (*Settings, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}

	s := Defaults()
	if err := toml.Unmarshal(data, s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: %s: line %d, column %d: %v", errs.ErrInvalidConfig, c.path, row, col, derr)
		}
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrInvalidConfig, c.path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save validates and persists the settings, creating directories as needed.
func (c *Config) Save(s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return os.WriteFile(c.path, buf.Bytes(), 0o644)
}

// SetNetPath sets the net_path key in the config.
func (c *Config) SetNetPath(path string) error {
	s, err := c.Load()
	if err != nil {
		return err
	}
	s.NetPath = path
	return c.Save(s)
}

// SetDescription sets the default commit description.
func (c *Config) SetDescription(description string) error {
	s, err := c.Load()
	if err != nil {
		return err
	}
	s.Description = description
	return c.Save(s)
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the settings, naming fields by their TOML keys.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", errs.ErrInvalidConfig, strings.Join(msgs, "; "))
}
