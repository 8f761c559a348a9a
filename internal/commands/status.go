package commands

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gerunddev/deckbridge/internal/config"
	"github.com/gerunddev/deckbridge/internal/state"
	"github.com/gerunddev/deckbridge/internal/styles"
)

// Status lists every tracked source file, its deck and when it was
// last rendered
func Status(args []string) {
	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Failed to load state: "+err.Error()))
		os.Exit(1)
	}

	if len(st.Files) == 0 {
		fmt.Println(styles.DimStyle.Render("No files rendered yet"))
		return
	}

	paths := make([]string, 0, len(st.Files))
	for path := range st.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Rendered files (%d)", len(paths))))
	for _, path := range paths {
		fs := st.Files[path]
		rendered := humanize.Time(time.Unix(fs.RenderedAt, 0))

		marker := styles.SuccessStyle.Render("✓")
		note := ""
		if changed, err := st.HasChanged(path); err != nil {
			marker = styles.ErrorStyle.Render("✗")
			note = styles.ErrorStyle.Render(" (missing)")
		} else if changed {
			marker = styles.WarningStyle.Render("!")
			note = styles.WarningStyle.Render(" (changed since last render)")
		}

		fmt.Printf("%s %s%s\n", marker, path, note)
		fmt.Println(styles.DimStyle.Render(fmt.Sprintf("    %s, %d slides, rendered %s", fs.Deck, fs.Slides, rendered)))
	}
}
