package types

type (
	// Config holds defaults read from an optional .treegen.yaml in the
	// target directory. Zero value means no defaults.
	Config struct {
		Level     int      `yaml:"level"`
		Gitignore bool     `yaml:"gitignore"`
		Ignore    []string `yaml:"ignore"`
	}
)
