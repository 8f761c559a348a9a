package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/deckbridge/internal/deck"
	"github.com/gerunddev/deckbridge/internal/parser"
	"github.com/gerunddev/deckbridge/internal/styles"
	"github.com/gerunddev/deckbridge/internal/tui"
)

// Preview opens an interactive slide-by-slide preview of a markdown file
func Preview(args []string) {
	src := inputFile(args)
	cfg := loadConfig()

	fontCfg, err := fontConfig(cfg, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	content, err := os.ReadFile(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to read "+src+": "+err.Error()))
		os.Exit(1)
	}

	data := buildPreview(string(content), src, fontCfg)
	p := tea.NewProgram(tui.InitPreviewModel(data), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Preview failed: "+err.Error()))
		os.Exit(1)
	}
}

// buildPreview pairs each projected slide with the markdown page it came from
func buildPreview(content, src string, fontCfg deck.Config) *tui.PreviewData {
	pages := parser.Pages(parser.Parse(content))
	sources := splitSource(content)

	data := &tui.PreviewData{Filename: deckFilename(src)}
	for i, page := range pages {
		sp := tui.SlidePage{Slide: deck.SlideFromPage(page, fontCfg)}
		if i < len(sources) {
			sp.Source = sources[i]
		}
		data.Pages = append(data.Pages, sp)
	}
	return data
}
