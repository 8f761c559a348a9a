package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerunddev/deckbridge/internal/config"
	"github.com/gerunddev/deckbridge/internal/deck"
	"github.com/gerunddev/deckbridge/internal/styles"
)

// flagValue extracts the value following a --flag argument
func flagValue(args []string, name string) (string, bool) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// hasFlag reports whether a bare --flag argument is present
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// valueFlags are the flags that consume the following argument
var valueFlags = map[string]bool{
	"--out":      true,
	"--theme":    true,
	"--renderer": true,
	"--interval": true,
}

// positionalArgs returns the non-flag arguments in order
func positionalArgs(args []string) []string {
	var found []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "--") {
			if valueFlags[args[i]] {
				i++
			}
			continue
		}
		found = append(found, args[i])
	}
	return found
}

// inputFile returns the first non-flag argument, or exits with an error
func inputFile(args []string) string {
	if found := positionalArgs(args); len(found) > 0 {
		return found[0]
	}
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ No input file specified"))
	os.Exit(1)
	return ""
}

// fontConfig resolves the font configuration: an explicit --theme flag wins,
// then the configured theme, then the defaults
func fontConfig(cfg *config.Config, args []string) (deck.Config, error) {
	themePath, ok := flagValue(args, "--theme")
	if !ok {
		themePath = cfg.Theme
	}
	if themePath == "" {
		return deck.DefaultConfig(), nil
	}
	return deck.LoadTheme(themePath)
}

// deckFilename derives the output deck name from the source path
func deckFilename(src string) string {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".pptx"
}

// loadConfig loads the configuration or exits with an error
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to load config: "+err.Error()))
		os.Exit(1)
	}
	return cfg
}

// splitSource splits raw markdown into per-page sources at horizontal rules,
// mirroring the parser's page boundaries
func splitSource(input string) []string {
	lines := strings.Split(input, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	pages := []string{""}
	var current []string
	flush := func() {
		pages[len(pages)-1] = strings.Join(current, "\n")
		current = nil
	}
	for _, line := range lines {
		if line == "---" || line == "***" {
			flush()
			pages = append(pages, "")
			continue
		}
		current = append(current, line)
	}
	flush()
	return pages
}
