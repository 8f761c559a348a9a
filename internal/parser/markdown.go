package parser

// Component is one structural unit of a parsed document. The set of
// implementations is closed: TextComponent, ListComponent and SplitLine.
// Consumers switch over the concrete type and treat any other value as a
// programming error, so adding a variant without updating them fails loudly
// instead of silently defaulting.
type Component interface {
	component()
}

// TextComponent is a single classified line outside any list.
type TextComponent struct {
	Text Text
}

// ListComponent is a bulleted list with its nested children.
type ListComponent struct {
	List ItemList
}

// SplitLine is the horizontal-rule separator marking a page boundary.
type SplitLine struct{}

func (TextComponent) component() {}
func (ListComponent) component() {}
func (SplitLine) component()     {}

// isSplitLine recognizes the two horizontal-rule spellings.
func isSplitLine(line string) bool {
	return line == "---" || line == "***"
}

// Parse turns markdown source into an ordered component sequence in a single
// forward pass. Every input is syntactically accepted: ill-formed constructs
// degrade to Normal text rather than failing, so there is no error return.
func Parse(input string) []Component {
	cur := newCursor(input)
	var components []Component
	for {
		line, ok := cur.peek()
		if !ok {
			break
		}
		switch {
		case isBlank(line):
			cur.next()
		case isSplitLine(line):
			cur.next()
			components = append(components, SplitLine{})
		case isListLine(line):
			list := parseItems(cur, 0)
			if len(list.Items) > 0 {
				components = append(components, ListComponent{List: list})
				continue
			}
			// A line that looked like a list yielded no items; consume it
			// as text so the loop keeps making forward progress.
			fallthrough
		default:
			cur.next()
			components = append(components, TextComponent{Text: ClassifyText(line)})
		}
	}
	return components
}

// Page is a maximal run of components between two split lines. The split
// lines themselves belong to neither adjacent page.
type Page struct {
	Components []Component
}

// Pages partitions the component sequence at every SplitLine. A sequence
// with k separators yields exactly k+1 pages, any of which may be empty,
// including the first and the last.
func Pages(components []Component) []Page {
	pages := []Page{{}}
	for _, c := range components {
		if _, ok := c.(SplitLine); ok {
			pages = append(pages, Page{})
			continue
		}
		last := &pages[len(pages)-1]
		last.Components = append(last.Components, c)
	}
	return pages
}
