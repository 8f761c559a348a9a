// Package deck projects parsed markdown components into the renderer's
// slide-deck document model.
package deck

import "github.com/gerunddev/deckbridge/internal/parser"

// Deck is the serializable document handed to the renderer service.
type Deck struct {
	Filename string  `json:"filename"`
	Slides   []Slide `json:"slides"`
}

// New returns an empty deck for the given output filename.
func New(filename string) Deck {
	return Deck{Filename: filename, Slides: []Slide{}}
}

// AddSlide appends a slide to the deck.
func (d *Deck) AddSlide(s Slide) {
	d.Slides = append(d.Slides, s)
}

// FromComponents projects an already-parsed component sequence: one slide
// per page, pages split at horizontal rules.
func FromComponents(components []parser.Component, filename string, cfg Config) Deck {
	d := New(filename)
	for _, page := range parser.Pages(components) {
		d.AddSlide(SlideFromPage(page, cfg))
	}
	return d
}

// FromMarkdown parses markdown source and projects it into a deck.
func FromMarkdown(input, filename string, cfg Config) Deck {
	return FromComponents(parser.Parse(input), filename, cfg)
}
