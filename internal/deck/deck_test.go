package deck

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromMarkdown(t *testing.T) {
	var lines strings.Builder
	lines.WriteString("# Title\n")
	lines.WriteString("---\n")
	lines.WriteString("# Langs\n")
	lines.WriteString("- Rust\n")
	lines.WriteString("    - Fast\n")
	lines.WriteString("- Python\n")
	lines.WriteString("    - Popular\n")
	lines.WriteString("---\n")

	d := FromMarkdown(lines.String(), "talk.pptx", DefaultConfig())

	if d.Filename != "talk.pptx" {
		t.Errorf("filename = %q, want %q", d.Filename, "talk.pptx")
	}
	if len(d.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(d.Slides))
	}

	first := d.Slides[0]
	if first.Type != TypeTitle || first.Title == nil || *first.Title != "Title" {
		t.Errorf("slide 0 = %+v, want title_slide %q", first, "Title")
	}

	second := d.Slides[1]
	if second.Type != TypeTitleAndContent || second.Title == nil || *second.Title != "Langs" {
		t.Fatalf("slide 1 = %+v, want title_and_content %q", second, "Langs")
	}
	wantContents := []Content{
		{
			Text: "Rust", Size: defaultNormalSize,
			Children: []Content{{Text: "Fast", Size: defaultNormalSize - defaultPerLevel}},
		},
		{
			Text: "Python", Size: defaultNormalSize,
			Children: []Content{{Text: "Popular", Size: defaultNormalSize - defaultPerLevel}},
		},
	}
	if diff := cmp.Diff(wantContents, second.Contents); diff != "" {
		t.Errorf("slide 1 contents mismatch (-want +got):\n%s", diff)
	}

	// The trailing separator leaves a final empty page.
	third := d.Slides[2]
	if third.Type != TypeBlank || third.Title != nil || len(third.Contents) != 0 {
		t.Errorf("slide 2 = %+v, want an empty blank slide", third)
	}
}

func TestFromMarkdownWithConfig(t *testing.T) {
	input := "# Title\n---\n# Rust is very good\n- # So fast\n    - no GC\n---\n"
	cfg := DefaultConfig().WithH1(Font{Size: 100, Bold: false})

	d := FromMarkdown(input, "talk.pptx", cfg)

	if len(d.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(d.Slides))
	}
	// The second slide's first content entry is an H1 list item and must
	// report the overridden font.
	got := d.Slides[1].Contents[0]
	if got.Size != 100 || got.Bold {
		t.Errorf("content font = %d/%v, want 100/plain", got.Size, got.Bold)
	}
}

// The JSON field names and the null-vs-absent rules are consumed by the
// renderer service and must not drift.
func TestDeckWireFormat(t *testing.T) {
	input := "# Deck\n---\n# Points\n- one\n    - two\n---\n"

	d := FromMarkdown(input, "deck.pptx", DefaultConfig())
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Filename string `json:"filename"`
		Slides   []struct {
			Type     string          `json:"type"`
			Title    json.RawMessage `json:"title"`
			Contents json.RawMessage `json:"contents"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Filename != "deck.pptx" {
		t.Errorf("filename = %q", decoded.Filename)
	}
	if len(decoded.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(decoded.Slides))
	}

	// Blank slides carry an explicit null title and an empty array, never
	// a null contents field.
	last := decoded.Slides[2]
	if string(last.Title) != "null" {
		t.Errorf("blank slide title = %s, want null", last.Title)
	}
	if string(last.Contents) != "[]" {
		t.Errorf("blank slide contents = %s, want []", last.Contents)
	}

	// Childless content entries serialize children as null, parents as an
	// array.
	doc := string(data)
	if !strings.Contains(doc, `"text":"one"`) {
		t.Fatalf("missing list entry in %s", doc)
	}
	if !strings.Contains(doc, `"text":"two","size":14,"bold":false,"children":null`) {
		t.Errorf("leaf entry should serialize children as null: %s", doc)
	}
}

func TestAddSlide(t *testing.T) {
	d := New("empty.pptx")
	if len(d.Slides) != 0 {
		t.Fatalf("new deck has %d slides", len(d.Slides))
	}

	d.AddSlide(blankSlide())
	d.AddSlide(titleSlide("T"))

	if len(d.Slides) != 2 {
		t.Errorf("slides = %d, want 2", len(d.Slides))
	}
	if d.Slides[1].Type != TypeTitle {
		t.Errorf("second slide type = %q, want %q", d.Slides[1].Type, TypeTitle)
	}
}

// An empty deck still serializes slides as an array.
func TestEmptyDeckWireFormat(t *testing.T) {
	data, err := json.Marshal(New("empty.pptx"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"filename":"empty.pptx","slides":[]}`
	if string(data) != want {
		t.Errorf("deck JSON = %s, want %s", data, want)
	}
}
