package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names recognized as fallbacks for sferd.yaml values.
const (
	EnvObjectsPath = "SFERD_OBJECTS_PATH"
	EnvOutputDir   = "SFERD_OUTPUT_DIR"
	EnvTitle       = "SFERD_TITLE"
	EnvMaxObjects  = "SFERD_MAX_OBJECTS"
	EnvFormats     = "SFERD_FORMATS"
	EnvEngine      = "SFERD_ENGINE"
)

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnvironment fills unset ProjectConfig fields from SFERD_* environment
// variables. Values already present in the config win; the environment only
// supplies defaults.
func ApplyEnvironment(cfg *ProjectConfig) error {
	if cfg.ObjectsPath == "" {
		cfg.ObjectsPath = os.Getenv(EnvObjectsPath)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = os.Getenv(EnvOutputDir)
	}
	if cfg.Title == "" {
		cfg.Title = os.Getenv(EnvTitle)
	}
	if cfg.Engine == "" {
		cfg.Engine = os.Getenv(EnvEngine)
	}
	if cfg.MaxObjects == 0 {
		if raw := os.Getenv(EnvMaxObjects); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid %s value %q: %w", EnvMaxObjects, raw, err)
			}
			cfg.MaxObjects = n
		}
	}
	if len(cfg.Formats) == 0 {
		if raw := os.Getenv(EnvFormats); raw != "" {
			for _, f := range strings.Split(raw, ",") {
				if f = strings.TrimSpace(f); f != "" {
					cfg.Formats = append(cfg.Formats, f)
				}
			}
		}
	}
	return nil
}
