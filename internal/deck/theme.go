package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fontSpec is one font override in a theme file.
type fontSpec struct {
	Size int  `yaml:"size"`
	Bold bool `yaml:"bold"`
}

// themeFile is the on-disk theme shape. Absent keys keep their defaults.
type themeFile struct {
	H1       *fontSpec `yaml:"h1"`
	H2       *fontSpec `yaml:"h2"`
	H3       *fontSpec `yaml:"h3"`
	Normal   *fontSpec `yaml:"normal"`
	PerLevel *int      `yaml:"per_level"`
}

// LoadTheme reads a YAML theme file and applies its overrides on top of the
// default config.
func LoadTheme(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	cfg, err := ParseTheme(data)
	if err != nil {
		return Config{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return cfg, nil
}

// ParseTheme applies YAML theme overrides on top of the default config.
func ParseTheme(data []byte) (Config, error) {
	var theme themeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Config{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	cfg := DefaultConfig()
	if theme.H1 != nil {
		cfg = cfg.WithH1(Font{Size: theme.H1.Size, Bold: theme.H1.Bold})
	}
	if theme.H2 != nil {
		cfg = cfg.WithH2(Font{Size: theme.H2.Size, Bold: theme.H2.Bold})
	}
	if theme.H3 != nil {
		cfg = cfg.WithH3(Font{Size: theme.H3.Size, Bold: theme.H3.Bold})
	}
	if theme.Normal != nil {
		cfg = cfg.WithNormal(Font{Size: theme.Normal.Size, Bold: theme.Normal.Bold})
	}
	if theme.PerLevel != nil {
		cfg = cfg.WithPerLevel(*theme.PerLevel)
	}
	return cfg, nil
}
