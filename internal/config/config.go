package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig carries per-project generation defaults. Flags override
// these values; these values override built-in defaults.
type ProjectConfig struct {
	ObjectsPath        string   `yaml:"objects_path"`
	OutputDir          string   `yaml:"output_dir,omitempty"`
	Filename           string   `yaml:"filename,omitempty"`
	Title              string   `yaml:"title,omitempty"`
	MaxObjects         int      `yaml:"max_objects,omitempty"`
	Formats            []string `yaml:"formats,omitempty"`
	Engine             string   `yaml:"engine,omitempty"`
	Objects            []string `yaml:"objects,omitempty"`
	HideFields         bool     `yaml:"hide_fields,omitempty"`
	MaxFieldsPerEntity *int     `yaml:"max_fields_per_entity,omitempty"`
}

const ConfigFileName = "sferd.yaml"

// Load reads sferd.yaml from the project directory.
func Load(projectPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectPath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
