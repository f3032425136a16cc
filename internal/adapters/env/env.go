package env

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/willyhardian/expressjstutorial/internal/core"
)

// DetectMode reads the dev switch. Anything but DOCSITE_DEV=1 is prod.
func DetectMode() core.Mode {
	if os.Getenv("DOCSITE_DEV") == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}

// Config holds the runtime settings for the server and build commands.
type Config struct {
	Port       int    `env:"DOCSITE_PORT" envDefault:"3000"`
	OutDir     string `env:"DOCSITE_OUT_DIR" envDefault:"dist"`
	ContentDir string `env:"DOCSITE_CONTENT_DIR"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
