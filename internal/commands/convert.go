package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gerunddev/deckbridge/internal/config"
	"github.com/gerunddev/deckbridge/internal/deck"
	"github.com/gerunddev/deckbridge/internal/logger"
	"github.com/gerunddev/deckbridge/internal/parser"
	"github.com/gerunddev/deckbridge/internal/render"
	"github.com/gerunddev/deckbridge/internal/state"
	"github.com/gerunddev/deckbridge/internal/styles"
)

// Convert parses a markdown file, projects it into a deck and sends it to
// the renderer service (or writes the JSON locally with --dry-run / --out)
func Convert(args []string) {
	src := inputFile(args)
	dryRun := hasFlag(args, "--dry-run")
	force := hasFlag(args, "--force")
	outPath, writeOut := flagValue(args, "--out")

	cfg := loadConfig()
	if url, ok := flagValue(args, "--renderer"); ok {
		cfg.RendererURL = url
	}

	fontCfg, err := fontConfig(cfg, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to load state: "+err.Error()))
		os.Exit(1)
	}

	// Skip unchanged sources unless asked otherwise. Local output modes
	// always run; they don't touch the renderer or the state.
	if !force && !dryRun && !writeOut {
		changed, err := st.HasChanged(src)
		if err == nil && !changed {
			fmt.Println(styles.DimStyle.Render("Skipped: " + src + " is unchanged since its last render (use --force)"))
			return
		}
	}

	log := newLog(cfg)

	d, componentCount, err := buildDeck(src, fontCfg)
	if err != nil {
		log.FileError(src, err)
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
	log.ParseCompleted(src, componentCount, len(d.Slides))

	if dryRun || writeOut {
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to encode deck: "+err.Error()))
			os.Exit(1)
		}
		if writeOut {
			if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
				fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to write deck: "+err.Error()))
				os.Exit(1)
			}
			fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Wrote %d slides to %s", len(d.Slides), outPath)))
			return
		}
		fmt.Println(string(data))
		return
	}

	if err := sendDeck(cfg, st, log, src, d); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Rendered %d slides into %s", len(d.Slides), d.Filename)))
}

// buildDeck reads and parses a source file and projects it into a deck
func buildDeck(src string, fontCfg deck.Config) (deck.Deck, int, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return deck.Deck{}, 0, fmt.Errorf("failed to read %s: %w", src, err)
	}
	components := parser.Parse(string(content))
	return deck.FromComponents(components, deckFilename(src), fontCfg), len(components), nil
}

// sendDeck posts a deck to the renderer and records the render in state
func sendDeck(cfg *config.Config, st *state.State, log *logger.Logger, src string, d deck.Deck) error {
	client := render.NewClientWithTimeout(cfg.RendererURL, cfg.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	log.RenderStarted(src, cfg.RendererURL)
	start := time.Now()
	if err := client.Render(ctx, d); err != nil {
		log.RenderError(src, err)
		return err
	}
	log.RenderCompleted(src, len(d.Slides), time.Since(start))

	if err := st.MarkRendered(src, d.Filename, len(d.Slides)); err != nil {
		log.StateError("mark rendered", err)
		return nil // the render itself succeeded
	}
	if err := st.Save(config.StateFilePath()); err != nil {
		log.StateError("save", err)
	}
	return nil
}

// newLog opens the configured log file, discarding logs if it can't
func newLog(cfg *config.Config) *logger.Logger {
	if cfg.LogFile == "" {
		return logger.Discard()
	}
	log, _, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		return logger.Discard()
	}
	return log
}
