package deck

import (
	"fmt"

	"github.com/gerunddev/deckbridge/internal/parser"
)

// Content is one render-ready node on a slide. Children is nil for a leaf,
// which the renderer receives as JSON null. The wire contract distinguishes
// null from an empty array, so leaves never carry [].
type Content struct {
	Text     string    `json:"text"`
	Size     int       `json:"size"`
	Bold     bool      `json:"bold"`
	Children []Content `json:"children"`
}

func newContent(text string, f Font) Content {
	return Content{Text: text, Size: f.Size, Bold: f.Bold}
}

// contentsFromComponent converts one component into its content entries: a
// text line yields one entry, a list yields one per top-level item, a split
// line yields none. The switch covers the parser's closed component set; a
// new variant must be handled here before it can ship.
func contentsFromComponent(c parser.Component, cfg Config) []Content {
	switch c := c.(type) {
	case parser.TextComponent:
		return []Content{newContent(c.Text.Value, cfg.textFont(c.Text))}
	case parser.ListComponent:
		return itemContents(c.List, cfg, 0)
	case parser.SplitLine:
		return nil
	default:
		panic(fmt.Sprintf("deck: unhandled component %T", c))
	}
}

// itemContents converts a list forest into content entries, shrinking the
// font by one configured step per nesting level. Root items are depth 0.
func itemContents(list parser.ItemList, cfg Config, depth int) []Content {
	var contents []Content
	for _, it := range list.Items {
		content := newContent(it.Text.Value, cfg.listFont(it.Text, depth))
		if len(it.Children.Items) > 0 {
			content.Children = itemContents(it.Children, cfg, depth+1)
		}
		contents = append(contents, content)
	}
	return contents
}
