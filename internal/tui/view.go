package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

func newViewport(width, height int) viewport.Model {
	vpWidth := width - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	vpHeight := height - 6
	if vpHeight < 5 {
		vpHeight = 5
	}
	return viewport.New(vpWidth, vpHeight)
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.viewMode {
	case ViewDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chatmatch dashboard"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(emptyStateStyle.Width(m.width).Render("No message files found."))
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("q quit"))
		return b.String()
	}

	for i, entry := range m.entries {
		line := m.renderEntryLine(entry)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("↑/↓ navigate • enter inspect • q quit"))
	return b.String()
}

func (m Model) renderEntryLine(entry Entry) string {
	if entry.Err != nil {
		return fmt.Sprintf("%s %s", brokenStyle.Render("✗"), entry.Name)
	}

	source := "?"
	if entry.Message != nil {
		source = string(entry.Message.Source)
	}
	return fmt.Sprintf("%s %s", sourceStyle.Render(source), entry.Name)
}

func (m Model) renderDetail() string {
	entry, ok := m.SelectedEntry()
	if !ok {
		return m.renderList()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.Name))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ scroll • esc back • q quit"))
	return b.String()
}

// renderDetailContent builds the inspection text for the selected entry:
// match results first, then the sanitized text preview.
func (m Model) renderDetailContent() string {
	entry, ok := m.SelectedEntry()
	if !ok {
		return ""
	}

	if entry.Err != nil {
		return brokenStyle.Render("✗ " + entry.Err.Error())
	}

	var b strings.Builder

	b.WriteString(detailLabelStyle.Render("File"))
	b.WriteString(detailValueStyle.Render(entry.Path))
	b.WriteString("\n")
	b.WriteString(detailLabelStyle.Render("Source"))
	b.WriteString(detailValueStyle.Render(string(entry.Message.Source)))
	b.WriteString("\n\n")

	results := m.matcher.Match(entry.Message, m.cfg)
	b.WriteString(detailLabelStyle.Render("Components"))
	if len(results) == 0 {
		b.WriteString(detailValueStyle.Render("(none)"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		for _, result := range results {
			line := fmt.Sprintf("  %s → %s", result.Rule, result.Component)
			if result.Passthrough {
				line += passthroughTagStyle.Render(" (passthrough)")
			}
			b.WriteString(detailValueStyle.Render(line))
			b.WriteString("\n")
		}
	}

	text := entry.Message.Text.Collated()
	if text == "" {
		text = entry.Message.PayloadText(m.cfg.PreferDefaultPreview())
	}
	if text != "" {
		b.WriteString("\n")
		b.WriteString(detailLabelStyle.Render("Sanitized"))
		b.WriteString("\n")
		b.WriteString(detailValueStyle.Render("  " + m.sanitizer.Sanitize(text)))
		b.WriteString("\n")
	}

	return b.String()
}
