// Package diff compares the deck models produced by two markdown sources.
package diff

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/deckbridge/internal/deck"
)

// Decks serializes both decks as indented JSON and returns a unified diff of
// the document models. The result is empty when the decks project
// identically.
func Decks(before, after deck.Deck, beforePath, afterPath string) (string, error) {
	beforeJSON, err := marshalDeck(before)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", beforePath, err)
	}
	afterJSON, err := marshalDeck(after)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", afterPath, err)
	}

	beforeName := filepath.Base(beforePath)
	afterName := filepath.Base(afterPath)

	edits := myers.ComputeEdits(span.URIFromPath(beforeName), beforeJSON, afterJSON)
	return fmt.Sprint(gotextdiff.ToUnified(beforeName, afterName, beforeJSON, edits)), nil
}

// Render wraps a unified diff in a markdown code fence and renders it with
// Glamour for terminal output. Falls back to the plain diff if rendering
// fails.
func Render(unified string) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}

	return rendered
}

func marshalDeck(d deck.Deck) (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
