package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sai-challenger/sai-attrgen/pkg/schema"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "SAI_ATTRGEN_"

// DefaultEnvFile is read by the CLI when present.
const DefaultEnvFile = ".env"

// Config holds the generator configuration. Command line flags take their
// defaults from it.
type Config struct {
	// Catalog is a YAML catalog path. Empty uses the embedded catalog.
	Catalog     string        `env:"CATALOG" envDefault:""`
	Format      schema.Format `env:"FORMAT" envDefault:"json"`
	Indent      bool          `env:"INDENT" envDefault:"false"`
	Workers     int           `env:"WORKERS" envDefault:"1"`
	Validate    bool          `env:"VALIDATE" envDefault:"false"`
	ObjectEnums bool          `env:"OBJECT_ENUMS" envDefault:"false"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"WARN"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the configuration from the process environment. Variables in
// envFile fill in names the environment does not set; a missing envFile is
// not an error.
func Load(envFile string) (*Config, error) {
	environ := environMap(os.Environ())

	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		default:
			for k, v := range fromFile {
				if _, ok := environ[k]; !ok {
					environ[k] = v
				}
			}
		}
	}

	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Check reports values the environment parser accepts but the generator
// cannot use.
func (c *Config) Check() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if _, err := schema.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
