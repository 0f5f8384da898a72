package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Emit the CSS custom-property stylesheet for the configured theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			stylesheet := theme.Stylesheet(theme.CSSVariables(&cfg.Theme))
			if stylesheet == "" {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("No theme colors configured."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), stylesheet)
			return nil
		},
	}

	return cmd
}
