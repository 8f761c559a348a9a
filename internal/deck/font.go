package deck

import "github.com/gerunddev/deckbridge/internal/parser"

// Font describes how a content entry is rendered: point size and weight.
// Size is signed on purpose: list nesting subtracts from it and the result
// is handed to the renderer unclamped.
type Font struct {
	Size int
	Bold bool
}

// Renderer defaults per heading level.
const (
	defaultH1Size     = 36
	defaultH2Size     = 28
	defaultH3Size     = 24
	defaultNormalSize = 18
	defaultPerLevel   = 4
)

// Config assigns a font to each heading level and to normal text, plus the
// point decrement applied per level of list nesting.
type Config struct {
	H1       Font
	H2       Font
	H3       Font
	Normal   Font
	PerLevel int
}

// DefaultConfig returns the renderer's stock fonts: bold 36/28/24pt headings
// and plain 18pt text, shrinking by 4pt per nesting level.
func DefaultConfig() Config {
	return Config{
		H1:       Font{Size: defaultH1Size, Bold: true},
		H2:       Font{Size: defaultH2Size, Bold: true},
		H3:       Font{Size: defaultH3Size, Bold: true},
		Normal:   Font{Size: defaultNormalSize},
		PerLevel: defaultPerLevel,
	}
}

// WithH1 returns a copy of the config with the level-1 heading font replaced.
func (c Config) WithH1(f Font) Config {
	c.H1 = f
	return c
}

// WithH2 returns a copy of the config with the level-2 heading font replaced.
func (c Config) WithH2(f Font) Config {
	c.H2 = f
	return c
}

// WithH3 returns a copy of the config with the level-3 heading font replaced.
func (c Config) WithH3(f Font) Config {
	c.H3 = f
	return c
}

// WithNormal returns a copy of the config with the normal-text font replaced.
func (c Config) WithNormal(f Font) Config {
	c.Normal = f
	return c
}

// WithPerLevel returns a copy of the config with the per-nesting-level size
// decrement replaced.
func (c Config) WithPerLevel(n int) Config {
	c.PerLevel = n
	return c
}

// textFont picks the configured font for a classified line.
func (c Config) textFont(t parser.Text) Font {
	switch t.Level {
	case parser.Heading1:
		return c.H1
	case parser.Heading2:
		return c.H2
	case parser.Heading3:
		return c.H3
	default:
		return c.Normal
	}
}

// listFont is textFont lowered by the nesting depth. Not clamped: deep
// nesting with a large decrement can reach zero or below, and the renderer
// receives that as-is.
func (c Config) listFont(t parser.Text, depth int) Font {
	f := c.textFont(t)
	f.Size -= depth * c.PerLevel
	return f
}
