package parser

import "strings"

// Item is one list entry: its classified text plus the items nested directly
// beneath it. Children is always a valid ItemList; a leaf item carries an
// empty one, never an absent one.
type Item struct {
	Text     Text
	Children ItemList
}

// ItemList is an ordered run of sibling items sharing one indentation depth.
type ItemList struct {
	Items []Item
}

// Recognized list markers, checked after stripping leading spaces.
const (
	dashMarker = "- "
	starMarker = "* "
)

// isListLine reports whether the line, after its leading spaces, opens with
// a recognized list marker.
func isListLine(line string) bool {
	rest := line[indentOf(line):]
	return strings.HasPrefix(rest, dashMarker) || strings.HasPrefix(rest, starMarker)
}

// indentOf counts leading spaces. Nesting is compared purely on this count:
// a deeper run nests under the previous item regardless of how many extra
// spaces it uses, so no fixed indent width is ever assumed.
func indentOf(line string) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// parseItems collects the sibling items at the given indentation from the
// shared cursor. Blank lines are skipped and never terminate a list. A
// non-list line, or a list line shallower than the current indentation, is
// left unconsumed for the caller. A strictly deeper run is parsed
// recursively and attached to the most recently added sibling. If the first
// list line encountered sits deeper than the requested indentation, that
// depth becomes the baseline, which lets callers always start at indent 0.
func parseItems(cur *cursor, indent int) ItemList {
	var items []Item
	for {
		line, ok := cur.peek()
		if !ok {
			break
		}
		if isBlank(line) {
			cur.next()
			continue
		}
		if !isListLine(line) {
			break
		}
		depth := indentOf(line)
		if depth > indent && len(items) == 0 {
			indent = depth
		}
		switch {
		case depth < indent:
			return ItemList{Items: items}
		case depth > indent:
			children := parseItems(cur, depth)
			last := &items[len(items)-1]
			last.Children.Items = append(last.Children.Items, children.Items...)
		default:
			cur.next()
			items = append(items, Item{Text: ClassifyText(line[depth+2:])})
		}
	}
	return ItemList{Items: items}
}
