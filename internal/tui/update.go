package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = newViewport(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - 6
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.viewMode == ViewDetail {
			m.viewMode = ViewList
			return m, nil
		}
		return m, tea.Quit

	case "esc":
		if m.viewMode == ViewDetail {
			m.viewMode = ViewList
		}
		return m, nil

	case "up", "k":
		if m.viewMode == ViewList {
			m.MoveCursorUp()
			return m, nil
		}

	case "down", "j":
		if m.viewMode == ViewList {
			m.MoveCursorDown()
			return m, nil
		}

	case "enter":
		if m.viewMode == ViewList {
			if _, ok := m.SelectedEntry(); ok {
				m.viewMode = ViewDetail
				if !m.ready {
					m.viewport = newViewport(m.width, m.height)
					m.ready = true
				}
				m.viewport.SetContent(m.renderDetailContent())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	// Remaining keys scroll the detail viewport.
	if m.viewMode == ViewDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}
