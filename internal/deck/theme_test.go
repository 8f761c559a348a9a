package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty theme keeps defaults",
			yaml: "",
			want: DefaultConfig(),
		},
		{
			name: "partial override",
			yaml: "h1:\n  size: 100\n  bold: false\n",
			want: DefaultConfig().WithH1(Font{Size: 100, Bold: false}),
		},
		{
			name: "full override",
			yaml: `h1: {size: 32, bold: true}
h2: {size: 100, bold: false}
h3: {size: 110, bold: true}
normal: {size: 20, bold: true}
per_level: 10
`,
			want: Config{
				H1:       Font{Size: 32, Bold: true},
				H2:       Font{Size: 100},
				H3:       Font{Size: 110, Bold: true},
				Normal:   Font{Size: 20, Bold: true},
				PerLevel: 10,
			},
		},
		{
			name: "per_level zero is honored",
			yaml: "per_level: 0\n",
			want: DefaultConfig().WithPerLevel(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTheme([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseTheme() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTheme() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseThemeInvalidYAML(t *testing.T) {
	if _, err := ParseTheme([]byte("h1: [not a mapping")); err == nil {
		t.Error("ParseTheme() should reject malformed YAML")
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("normal:\n  size: 22\n"), 0644); err != nil {
		t.Fatalf("failed to write theme: %v", err)
	}

	cfg, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if cfg.Normal.Size != 22 || cfg.Normal.Bold {
		t.Errorf("normal font = %+v, want 22/plain", cfg.Normal)
	}
	if cfg.H1 != DefaultConfig().H1 {
		t.Errorf("h1 should keep its default, got %+v", cfg.H1)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTheme() should fail on a missing file")
	}
}
