// Package tui implements the fixture-browser dashboard: an interactive view
// over a directory of message JSON files showing, for each one, which
// components the matcher selects and how the text sanitizes.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/logger"
	"github.com/conversive/chatmatch/internal/matcher"
	"github.com/conversive/chatmatch/internal/message"
	"github.com/conversive/chatmatch/internal/sanitize"
)

// ViewMode identifies which screen the dashboard shows.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Entry is one message fixture loaded from the browsed directory.
type Entry struct {
	Path    string
	Name    string
	Message *message.Message
	Err     error
}

// Model is the dashboard model.
type Model struct {
	entries   []Entry
	matcher   *matcher.Matcher
	sanitizer *sanitize.Sanitizer
	cfg       *config.Config

	viewMode ViewMode
	cursor   int
	viewport viewport.Model
	ready    bool

	width  int
	height int
}

// NewModel loads every .json file under dir and builds the dashboard model.
func NewModel(dir string, cfg *config.Config, log *logger.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	entries, err := loadEntries(dir)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		entries:   entries,
		matcher:   matcher.New(nil, log),
		sanitizer: sanitize.New(sanitize.FromConfig(cfg), log),
		cfg:       cfg,
		viewMode:  ViewList,
		width:     80,
		height:    24,
	}

	return m, nil
}

func loadEntries(dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing message files: %w", err)
	}
	sort.Strings(paths)

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		entry := Entry{
			Path: path,
			Name: strings.TrimSuffix(filepath.Base(path), ".json"),
		}
		data, err := os.ReadFile(path)
		if err != nil {
			entry.Err = err
		} else {
			entry.Message, entry.Err = message.FromJSON(data)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedEntry returns the entry under the cursor.
func (m *Model) SelectedEntry() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[m.cursor], true
}

// MoveCursorUp moves the cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	if len(m.entries) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.entries) - 1
	}
}

// MoveCursorDown moves the cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	if len(m.entries) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
}

// GetViewMode returns the current view mode.
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}
