package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	ManifestPath string `yaml:"manifest_path" env:"SEEDER_MANIFEST_PATH"`
	DryRun       bool   `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
	// StopOnError aborts the pipeline at the first failed phase instead of
	// running the remaining ones.
	StopOnError bool `yaml:"stop_on_error" env:"SEEDER_STOP_ON_ERROR"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
