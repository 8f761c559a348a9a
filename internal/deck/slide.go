package deck

import (
	"fmt"

	"github.com/gerunddev/deckbridge/internal/parser"
)

// Slide type tags understood by the renderer.
const (
	TypeTitle           = "title_slide"
	TypeTitleAndContent = "title_and_content"
	TypeBlank           = "blank"
)

// Slide is one page projected into the renderer's model. Title serializes
// to null when absent; Contents is always an array on the wire, even empty.
type Slide struct {
	Type     string    `json:"type"`
	Title    *string   `json:"title"`
	Contents []Content `json:"contents"`
}

func blankSlide() Slide {
	return Slide{Type: TypeBlank, Contents: []Content{}}
}

func titleSlide(title string) Slide {
	return Slide{Type: TypeTitle, Title: &title, Contents: []Content{}}
}

func titleAndContentSlide(title string) Slide {
	return Slide{Type: TypeTitleAndContent, Title: &title, Contents: []Content{}}
}

func (s *Slide) addContents(contents []Content) {
	s.Contents = append(s.Contents, contents...)
}

// SlideFromPage projects one page into a slide. A page holding only a
// level-1 heading becomes a title slide. A page opening with any heading
// followed by more components becomes a title-and-content slide, with the
// heading consumed as the title. Everything else lands on a blank slide,
// its contents in source order.
func SlideFromPage(page parser.Page, cfg Config) Slide {
	components := page.Components
	if len(components) == 0 {
		return blankSlide()
	}

	if len(components) == 1 {
		switch c := components[0].(type) {
		case parser.TextComponent:
			if c.Text.Level == parser.Heading1 {
				return titleSlide(c.Text.Value)
			}
			slide := blankSlide()
			slide.addContents(contentsFromComponent(c, cfg))
			return slide
		case parser.ListComponent:
			slide := blankSlide()
			slide.addContents(contentsFromComponent(c, cfg))
			return slide
		case parser.SplitLine:
			// A stray separator degenerates to a contentless blank slide.
			return blankSlide()
		default:
			panic(fmt.Sprintf("deck: unhandled component %T", c))
		}
	}

	first, rest := components[0], components[1:]
	var slide Slide
	if text, ok := first.(parser.TextComponent); ok && text.Text.Level != parser.Normal {
		slide = titleAndContentSlide(text.Text.Value)
	} else {
		slide = blankSlide()
		slide.addContents(contentsFromComponent(first, cfg))
	}
	for _, c := range rest {
		slide.addContents(contentsFromComponent(c, cfg))
	}
	return slide
}
