package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/logger"
	"github.com/conversive/chatmatch/internal/sanitize"
)

func newSanitizeCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanitize [html]",
		Short: "Sanitize HTML the way message text is sanitized before rendering",
		Long: `Sanitize runs the given HTML fragment through the same sanitizer applied
to message text before rendering. The fragment is read from the argument,
or from stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				raw = string(data)
			}

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			sanitizer := sanitize.New(sanitize.FromConfig(cfg), log)
			fmt.Fprintln(cmd.OutOrStdout(), sanitizer.Sanitize(raw))
			return nil
		},
	}

	return cmd
}
