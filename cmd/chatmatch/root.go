package main

import (
	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chatmatch",
		Short:         "chatmatch inspects which component renders a chat message",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a webchat settings YAML file")

	cmd.AddCommand(newMatchCmd(flags, log))
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newSanitizeCmd(flags, log))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newComponentsCmd())
	cmd.AddCommand(newDashboardCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
