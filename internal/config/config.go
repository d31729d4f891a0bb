// Package config loads the jobform runtime configuration from an optional
// YAML file, an optional .env file and JOBFORM_* environment variables, in
// that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SinkLog  = "log"
	SinkHTTP = "http"
	SinkNone = "none"
)

// ErrInvalid wraps every validation failure reported by Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Title         string       `yaml:"title" env:"JOBFORM_TITLE"`
	TermsHTML     string       `yaml:"terms_html" env:"JOBFORM_TERMS_HTML"`
	TermsMarkdown string       `yaml:"terms_markdown" env:"JOBFORM_TERMS_MARKDOWN"`
	Server        ServerConfig `yaml:"server"`
	Sink          SinkConfig   `yaml:"sink"`
	Theme         ThemeConfig  `yaml:"theme"`
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Addr           string   `yaml:"addr" env:"JOBFORM_ADDR" validate:"required"`
	Mode           string   `yaml:"mode" env:"JOBFORM_MODE" validate:"omitempty,oneof=debug release test"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"JOBFORM_ALLOWED_ORIGINS" envSeparator:","`
}

// SinkConfig selects where submitted applications are delivered.
type SinkConfig struct {
	Kind     string        `yaml:"kind" env:"JOBFORM_SINK_KIND" validate:"required,oneof=log http none"`
	Endpoint string        `yaml:"endpoint" env:"JOBFORM_SINK_ENDPOINT" validate:"required_if=Kind http"`
	Format   string        `yaml:"format" env:"JOBFORM_SINK_FORMAT" validate:"omitempty,oneof=json form pretty"`
	Timeout  time.Duration `yaml:"timeout" env:"JOBFORM_SINK_TIMEOUT" validate:"gte=0"`
	// Contract is a file path or URL of an OpenAPI document replacing the
	// embedded submitApplication contract.
	Contract string `yaml:"contract" env:"JOBFORM_SINK_CONTRACT"`
}

// Default returns the configuration used when no file or variables are set.
func Default() Config {
	return Config{
		Title: "Job Application",
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Sink: SinkConfig{
			Kind:    SinkLog,
			Format:  "json",
			Timeout: 10 * time.Second,
		},
	}
}

// Options tells Load where to look.
type Options struct {
	// Path is the YAML file. Empty skips the file.
	Path string
	// EnvFile is a dotenv file. Empty tries ".env" and ignores its absence.
	EnvFile string
}

// Load assembles the configuration and validates it.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(opts.Path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	c.Sink.Kind = strings.ToLower(strings.TrimSpace(c.Sink.Kind))
	c.Sink.Format = strings.ToLower(strings.TrimSpace(c.Sink.Format))
	c.Sink.Endpoint = strings.TrimSpace(c.Sink.Endpoint)
	c.Sink.Contract = strings.TrimSpace(c.Sink.Contract)
	c.Theme.Name = strings.TrimSpace(c.Theme.Name)
	c.Theme.Variant = strings.TrimSpace(c.Theme.Variant)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct constraints and the theme manifest.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(parts, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Theme.Manifest(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
