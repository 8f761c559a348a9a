package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/deckbridge/internal/deck"
	"github.com/gerunddev/deckbridge/internal/styles"
)

// SlidePage pairs a projected slide with the markdown source of its page.
type SlidePage struct {
	Slide  deck.Slide
	Source string
}

// PreviewData holds everything the preview needs.
type PreviewData struct {
	Filename string
	Pages    []SlidePage
}

type previewModel struct {
	data          *PreviewData
	viewport      viewport.Model
	index         int
	showingSource bool
	width         int
	height        int
	ready         bool
}

// InitPreviewModel creates a slide preview model for the given deck.
func InitPreviewModel(data *PreviewData) previewModel {
	vp := viewport.New(100, 24)
	vp.Style = styles.SlideBorderStyle

	m := previewModel{
		data:     data,
		viewport: vp,
	}
	m.refreshContent()
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		m.ready = true
		m.refreshContent()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			if m.index < len(m.data.Pages)-1 {
				m.index++
				m.refreshContent()
			}
			return m, nil
		case "left", "h", "p":
			if m.index > 0 {
				m.index--
				m.refreshContent()
			}
			return m, nil
		case "s":
			m.showingSource = !m.showingSource
			m.refreshContent()
			return m, nil
		case "up", "k", "down", "j":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("DeckBridge Preview"))
	b.WriteString("\n\n")

	if m.data == nil || len(m.data.Pages) == 0 {
		b.WriteString(styles.DimStyle.Render("No slides"))
		b.WriteString("\n")
		return b.String()
	}

	position := fmt.Sprintf("%s, slide %d of %d", m.data.Filename, m.index+1, len(m.data.Pages))
	b.WriteString(styles.DimStyle.Render(position))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	if m.showingSource {
		b.WriteString(styles.HelpStyle.Render("←/h prev • →/l next • s slide view • q quit"))
	} else {
		b.WriteString(styles.HelpStyle.Render("←/h prev • →/l next • s source view • q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// refreshContent re-renders the current page into the viewport.
func (m *previewModel) refreshContent() {
	if m.data == nil || len(m.data.Pages) == 0 {
		return
	}
	page := m.data.Pages[m.index]
	if m.showingSource {
		m.viewport.SetContent(renderSource(page.Source))
	} else {
		m.viewport.SetContent(RenderSlide(page.Slide))
	}
	m.viewport.GotoTop()
}

// renderSource pretty-prints the page's raw markdown with Glamour, falling
// back to the plain source when rendering fails.
func renderSource(source string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return source
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return rendered
}

// RenderSlide renders one slide as styled terminal text.
func RenderSlide(s deck.Slide) string {
	var b strings.Builder

	b.WriteString(styles.DimStyle.Render(s.Type))
	b.WriteString("\n")
	if s.Title != nil {
		b.WriteString(styles.SlideTitleStyle.Render(*s.Title))
		b.WriteString("\n")
	}
	if len(s.Contents) > 0 {
		b.WriteString("\n")
		for _, c := range s.Contents {
			writeContent(&b, c, 0)
		}
	}

	return b.String()
}

func writeContent(b *strings.Builder, c deck.Content, depth int) {
	indent := strings.Repeat("  ", depth)
	weight := ""
	if c.Bold {
		weight = " bold"
	}
	note := styles.FontNoteStyle.Render(fmt.Sprintf("(%dpt%s)", c.Size, weight))
	fmt.Fprintf(b, "%s• %s %s\n", indent, styles.NormalTextStyle.Render(c.Text), note)
	for _, child := range c.Children {
		writeContent(b, child, depth+1)
	}
}
