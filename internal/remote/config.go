package remote

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the remote backend settings. All of it comes from the
// environment (optionally via a .env file) so the CLI stays usable fully
// offline when nothing is set.
type Config struct {
	URL      string `envconfig:"SHERAGES_REMOTE_URL"`
	Key      string `envconfig:"SHERAGES_REMOTE_KEY"`
	Email    string `envconfig:"SHERAGES_EMAIL"`
	Password string `envconfig:"SHERAGES_PASSWORD"`
}

// Enabled reports whether enough configuration exists to talk to the
// backend at all.
func (c Config) Enabled() bool {
	return c.URL != "" && c.Key != ""
}

// LoadConfig reads remote settings from the environment, loading a .env file
// first when one exists in the working directory.
func LoadConfig() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process remote env vars: %w", err)
	}
	return cfg, nil
}
