// ABOUTME: Runtime configuration loaded from .env files and environment variables.
// ABOUTME: Command-line flags override these values in cmd/bdas.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrParsingConfig = errors.New("failed to parse config")

// Config holds everything the CLI and preview server read from the environment.
type Config struct {
	OutputDir    string        `env:"BDAS_OUTPUT_DIR" envDefault:"data"`
	Seed         int64         `env:"BDAS_SEED" envDefault:"42"`
	ProjectsFile string        `env:"BDAS_PROJECTS_FILE"`
	Pace         time.Duration `env:"BDAS_PACE" envDefault:"0s"`
	DBPath       string        `env:"BDAS_DB_PATH"`
	Port         int           `env:"BDAS_PORT" envDefault:"9000"`
	OpenAIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel  string        `env:"OPENAI_MODEL" envDefault:"gpt-5-mini"`
}

// Load reads .env from the working directory and the home directory, then
// parses the environment. Variables already set in the environment win.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

func loadDotEnv() {
	// Missing files are fine
	_ = godotenv.Load(".env")
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".env"))
	}
}
