package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultArrayName is the array name used when neither an asset nor the
// manifest defaults provide one.
const DefaultArrayName = "test_opus_data"

// Config represents a batch manifest parsed from a YAML or TOML file.
// It lists the assets to convert along with shared defaults.
type Config struct {
	// Logging contains logging configuration for the batch run.
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	// Defaults holds values applied to assets that leave them empty.
	Defaults DefaultsConfig `yaml:"defaults" toml:"defaults"`
	// Assets is the list of files to convert.
	Assets []Asset `yaml:"assets" toml:"assets"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" toml:"level"`
	// Path is the log file path.
	Path string `yaml:"path" toml:"path"`
}

// DefaultsConfig holds manifest-wide fallbacks.
type DefaultsConfig struct {
	// Name is the array name for assets without one.
	Name string `yaml:"name" toml:"name"`
	// Description is the comment text for assets without one.
	Description string `yaml:"description" toml:"description"`
}

// Asset describes a single binary file to embed.
type Asset struct {
	// Input is the path of the binary file.
	Input string `yaml:"input" toml:"input"`
	// Output is the path of the header to generate.
	Output string `yaml:"output" toml:"output"`
	// Name is the identifier of the emitted array.
	Name string `yaml:"name" toml:"name"`
	// Description is rendered as a comment block in the header.
	Description string `yaml:"description" toml:"description"`
}

// Load reads a manifest from path. The format is chosen by file extension:
// .yaml and .yml are parsed as YAML, .toml as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (allowed: .yaml, .yml, .toml)", ext)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors, such as assets missing
// paths or two assets writing the same header. Output paths are compared
// in absolute form, so call Resolve first for manifest-relative paths.
func Validate(config *Config) error {
	if len(config.Assets) == 0 {
		return fmt.Errorf("manifest lists no assets")
	}

	seenOutputs := make(map[string]int)
	for i, a := range config.Assets {
		if a.Input == "" {
			return fmt.Errorf("asset %d: input is required", i)
		}
		if a.Output == "" {
			return fmt.Errorf("asset %d (%s): output is required", i, a.Input)
		}
		out := filepath.Clean(a.Output)
		if abs, err := filepath.Abs(out); err == nil {
			out = abs
		}
		if prev, ok := seenOutputs[out]; ok {
			return fmt.Errorf("asset %d (%s): output %s is already produced by asset %d", i, a.Input, a.Output, prev)
		}
		seenOutputs[out] = i
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults fills asset fields left empty from the manifest defaults.
func ApplyDefaults(config *Config) {
	if config.Defaults.Name == "" {
		config.Defaults.Name = DefaultArrayName
	}
	for i := range config.Assets {
		a := &config.Assets[i]
		if a.Name == "" {
			a.Name = config.Defaults.Name
		}
		if a.Description == "" {
			a.Description = config.Defaults.Description
		}
	}
}

// Resolve makes relative asset and log paths relative to baseDir,
// normally the directory holding the manifest.
func Resolve(config *Config, baseDir string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}
	for i := range config.Assets {
		config.Assets[i].Input = join(config.Assets[i].Input)
		config.Assets[i].Output = join(config.Assets[i].Output)
	}
	config.Logging.Path = join(config.Logging.Path)
}
