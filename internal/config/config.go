package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds workflow settings loaded from archivekit.yml.
// Command-line flags override anything set here.
type ProjectConfig struct {
	DestDir     string `yaml:"destDir,omitempty"`
	Policy      string `yaml:"policy,omitempty"`
	Workers     int    `yaml:"workers,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`
	SampleCount int    `yaml:"sampleCount,omitempty"`
	FixedDir    string `yaml:"fixedDir,omitempty"`
	LoadableDir string `yaml:"loadableDir,omitempty"`
}

// Load attempts to read archivekit.yml or archivekit.yaml from the given
// directory. Returns a zero-value config (not an error) if no config
// file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"archivekit.yml", "archivekit.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
