package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/deckbridge/internal/diff"
	"github.com/gerunddev/deckbridge/internal/styles"
)

// Diff projects two markdown files into decks and shows a unified diff
// of their wire representations
func Diff(args []string) {
	paths := positionalArgs(args)
	if len(paths) < 2 {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Usage: deckbridge diff <before.md> <after.md>"))
		os.Exit(1)
	}

	cfg := loadConfig()
	fontCfg, err := fontConfig(cfg, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	before, _, err := buildDeck(paths[0], fontCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
	after, _, err := buildDeck(paths[1], fontCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	unified, err := diff.Decks(before, after, paths[0], paths[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to diff decks: "+err.Error()))
		os.Exit(1)
	}
	if unified == "" {
		fmt.Println(styles.DimStyle.Render("No differences"))
		return
	}
	fmt.Println(diff.Render(unified))
}
