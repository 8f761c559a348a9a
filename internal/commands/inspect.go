package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/deckbridge/internal/deck"
	"github.com/gerunddev/deckbridge/internal/parser"
	"github.com/gerunddev/deckbridge/internal/styles"
	"github.com/gerunddev/deckbridge/internal/tui"
)

// Inspect prints the parsed component tree and the resulting slides
// without contacting the renderer
func Inspect(args []string) {
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

	components := parser.Parse(string(content))
	pages := parser.Pages(components)

	fmt.Println(styles.TitleStyle.Render("Components"))
	for _, c := range components {
		fmt.Print(describeComponent(c))
	}

	fmt.Println()
	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Slides (%d)", len(pages))))
	for i, page := range pages {
		s := deck.SlideFromPage(page, fontCfg)
		fmt.Println(styles.HighlightStyle.Render(fmt.Sprintf("[%d] %s", i+1, s.Type)))
		fmt.Println(tui.RenderSlide(s))
	}
}

// describeComponent formats one parsed component as an indented tree
func describeComponent(c parser.Component) string {
	var b strings.Builder
	switch v := c.(type) {
	case parser.TextComponent:
		b.WriteString(describeText(v.Text, 0))
	case parser.ListComponent:
		b.WriteString(styles.DimStyle.Render("list"))
		b.WriteString("\n")
		writeItems(&b, v.List, 1)
	case parser.SplitLine:
		b.WriteString(styles.DimStyle.Render("split"))
		b.WriteString("\n")
	default:
		panic(fmt.Sprintf("unknown component %T", c))
	}
	return b.String()
}

func describeText(t parser.Text, depth int) string {
	indent := strings.Repeat("  ", depth)
	label := "text"
	if t.Level != parser.Normal {
		label = fmt.Sprintf("h%d", t.Level)
	}
	return fmt.Sprintf("%s%s %q\n", indent, styles.DimStyle.Render(label), t.Value)
}

func writeItems(b *strings.Builder, list parser.ItemList, depth int) {
	for _, item := range list.Items {
		b.WriteString(describeText(item.Text, depth))
		writeItems(b, item.Children, depth+1)
	}
}
