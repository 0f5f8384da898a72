package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/conversive/chatmatch/internal/config"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	ruleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	passthroughStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// loadConfig resolves the settings tree for a command invocation. Without
// --config the defaults apply.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	return config.ParseConfig(flags.configPath)
}

// supportsUnicode reports whether the writer is a terminal that can be
// expected to render Unicode markers. Piped output gets ASCII.
func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// defaultCatalogPath places the component catalog under the user's home.
func defaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".chatmatch", "catalog.json"), nil
}
