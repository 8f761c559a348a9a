package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerunddev/deckbridge/internal/config"
	"github.com/gerunddev/deckbridge/internal/deck"
	"github.com/gerunddev/deckbridge/internal/logger"
	"github.com/gerunddev/deckbridge/internal/state"
	"github.com/gerunddev/deckbridge/internal/styles"
)

// Watch polls a markdown file and re-renders it whenever it changes,
// until interrupted
func Watch(args []string) {
	src := inputFile(args)
	cfg := loadConfig()

	if raw, ok := flagValue(args, "--interval"); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Invalid interval: "+err.Error()))
			os.Exit(1)
		}
		cfg.Interval = d
	}
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

	log := newLog(cfg)
	log.ConfigLoaded(cfg.RendererURL, cfg.Interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(styles.TitleStyle.Render("Watching " + src))
	fmt.Println(styles.DimStyle.Render(fmt.Sprintf("Polling every %s, renderer %s. Press Ctrl+C to stop.", cfg.Interval, cfg.RendererURL)))

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	renderIfChanged(cfg, st, log, src, fontCfg)
	for {
		select {
		case <-ctx.Done():
			fmt.Println(styles.DimStyle.Render("Stopped"))
			return
		case <-ticker.C:
			renderIfChanged(cfg, st, log, src, fontCfg)
		}
	}
}

// renderIfChanged re-renders the file when its content differs from the
// last recorded render. Failures are reported but never stop the loop.
func renderIfChanged(cfg *config.Config, st *state.State, log *logger.Logger, src string, fontCfg deck.Config) {
	changed, err := st.HasChanged(src)
	if err != nil {
		log.FileError(src, err)
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		return
	}
	log.WatchTick(src, changed)
	if !changed {
		return
	}

	d, components, err := buildDeck(src, fontCfg)
	if err != nil {
		log.FileError(src, err)
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		return
	}
	log.ParseCompleted(src, components, len(d.Slides))

	if err := sendDeck(cfg, st, log, src, d); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		return
	}
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s: rendered %d slides at %s", src, len(d.Slides), time.Now().Format(time.Kitchen))))
}
