// Package config loads optional per-directory defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/taigrr/treegen/internal/types"
	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up in the target directory.
const FileName = ".treegen.yaml"

// Load reads FileName from dir. A missing or unparsable file yields the
// zero Config; configuration problems never fail a run.
func Load(dir string) types.Config {
	var cfg types.Config

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.Config{}
	}
	if cfg.Level < 0 {
		cfg.Level = 0
	}
	return cfg
}
