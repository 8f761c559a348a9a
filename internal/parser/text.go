package parser

// Level identifies how a single line was classified.
type Level int

const (
	// Normal is any line that does not carry a heading marker.
	Normal Level = iota
	Heading1
	Heading2
	Heading3
)

// Text is one classified line: a heading level (or Normal) and the line's
// content with the marker and its following space stripped.
type Text struct {
	Level Level
	Value string
}

// ClassifyText classifies a single line. A run of '#' characters followed by
// one space is a heading; the level is the number of hashes, collapsing at
// three (#### and deeper still classify as level 3). A hash run without a
// following space is not a heading: the whole line stays Normal, with no
// partial stripping. Everything after the marker's space is kept verbatim.
func ClassifyText(line string) Text {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes >= len(line) || line[hashes] != ' ' {
		return Text{Level: Normal, Value: line}
	}
	level := hashes
	if level > 3 {
		level = 3
	}
	return Text{Level: Level(level), Value: line[hashes+1:]}
}
