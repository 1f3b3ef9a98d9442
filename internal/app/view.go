package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/ripred/bettermenu/menu"
)

const (
	navFooter  = "↑/↓ move  enter select  esc back  / jump  q quit"
	editFooter = "↑/↓ adjust  enter save  esc cancel"
)

// View renders the last frame the engine flushed, wrapped in the demo chrome.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderLine(m.headerText(), styles.Header))
	b.WriteByte('\n')
	for _, line := range m.screen.drawn {
		style := styles.Item
		if strings.HasPrefix(line, ">") {
			style = styles.SelectedItem
		}
		b.WriteString(m.renderLine(line, style))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	switch {
	case m.filtering:
		b.WriteString(m.filterInput.View())
	case m.showFooter && m.rt.Editing():
		b.WriteString(m.renderLine(editFooter, styles.Footer))
	case m.showFooter:
		b.WriteString(m.renderLine(navFooter, styles.Footer))
	}
	return b.String()
}

// headerText derives the breadcrumb line from the open menu.
func (m *Model) headerText() string {
	title := "bettermenu"
	if t, ok := m.rt.Current().(*menu.Menu); ok && t.Title() != "" {
		if m.rt.Depth() > 0 {
			title = title + " → " + t.Title()
		} else {
			title = t.Title()
		}
	}
	return title
}

// renderLine truncates text to the terminal width (ANSI-aware) and applies
// the style when one is set.
func (m *Model) renderLine(text string, style *lipgloss.Style) string {
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}
	if style == nil {
		return text
	}
	return style.Render(text)
}
