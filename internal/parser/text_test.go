package parser

import "testing"

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Text
	}{
		{
			name: "level 1 heading",
			line: "# Introduction",
			want: Text{Level: Heading1, Value: "Introduction"},
		},
		{
			name: "level 2 heading",
			line: "## Details",
			want: Text{Level: Heading2, Value: "Details"},
		},
		{
			name: "level 3 heading",
			line: "### Fine print",
			want: Text{Level: Heading3, Value: "Fine print"},
		},
		{
			name: "four hashes collapse to level 3",
			line: "#### Deep",
			want: Text{Level: Heading3, Value: "Deep"},
		},
		{
			name: "seven hashes collapse to level 3",
			line: "####### Deeper",
			want: Text{Level: Heading3, Value: "Deeper"},
		},
		{
			name: "plain text",
			line: "Just a line",
			want: Text{Level: Normal, Value: "Just a line"},
		},
		{
			name: "hash without space is not a heading",
			line: "#nospace",
			want: Text{Level: Normal, Value: "#nospace"},
		},
		{
			name: "bare hash run is not a heading",
			line: "####",
			want: Text{Level: Normal, Value: "####"},
		},
		{
			name: "lone hash",
			line: "#",
			want: Text{Level: Normal, Value: "#"},
		},
		{
			name: "content keeps embedded hashes verbatim",
			line: "## Issue #42 # tracker",
			want: Text{Level: Heading2, Value: "Issue #42 # tracker"},
		},
		{
			name: "only the single marker space is stripped",
			line: "#  double spaced",
			want: Text{Level: Heading1, Value: " double spaced"},
		},
		{
			name: "empty line",
			line: "",
			want: Text{Level: Normal, Value: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyText(tt.line)
			if got != tt.want {
				t.Errorf("ClassifyText(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
