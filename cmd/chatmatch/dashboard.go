package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/logger"
	"github.com/conversive/chatmatch/internal/tui"
)

func newDashboardCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard <dir>",
		Short: "Browse a directory of message fixtures interactively",
		Long: `Dashboard opens an interactive browser over a directory of message JSON
files, showing for each one which components the matcher selects and how
its text sanitizes under the active configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			model, err := tui.NewModel(args[0], cfg, log)
			if err != nil {
				return err
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("dashboard error: %w", err)
			}
			return nil
		},
	}

	return cmd
}
