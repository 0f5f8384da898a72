package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conversive/chatmatch/internal/config"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	dir := t.TempDir()
	writeFixture(t, dir, "hello.json", `{"source": "bot", "text": "<b>hi</b> there"}`)
	writeFixture(t, dir, "picker.json", `{"source": "bot", "data": {"_plugin": {"type": "date-picker"}}}`)
	writeFixture(t, dir, "broken.json", `{not json`)

	m, err := NewModel(dir, config.Default(), nil)
	require.NoError(t, err)
	return m
}

func TestNewModelLoadsEntriesSorted(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	require.Len(t, m.entries, 3)
	require.Equal(t, "broken", m.entries[0].Name)
	require.Equal(t, "hello", m.entries[1].Name)
	require.Equal(t, "picker", m.entries[2].Name)

	require.Error(t, m.entries[0].Err)
	require.NoError(t, m.entries[1].Err)
	require.NotNil(t, m.entries[1].Message)
}

func TestNewModelEmptyDirectory(t *testing.T) {
	t.Parallel()

	m, err := NewModel(t.TempDir(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, m.entries)

	_, ok := m.SelectedEntry()
	require.False(t, ok)
}

func TestCursorWrapsAround(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, 0, m.cursor)

	m.MoveCursorUp()
	require.Equal(t, 2, m.cursor)

	m.MoveCursorDown()
	require.Equal(t, 0, m.cursor)

	m.MoveCursorDown()
	m.MoveCursorDown()
	m.MoveCursorDown()
	require.Equal(t, 0, m.cursor)
}

func TestCursorOnEmptyModelIsStable(t *testing.T) {
	t.Parallel()

	m, err := NewModel(t.TempDir(), nil, nil)
	require.NoError(t, err)

	m.MoveCursorUp()
	require.Equal(t, 0, m.cursor)
	m.MoveCursorDown()
	require.Equal(t, 0, m.cursor)
}
