package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/logger"
	"github.com/conversive/chatmatch/internal/matcher"
	"github.com/conversive/chatmatch/internal/message"
)

type matchOptions struct {
	jsonOutput bool
}

func newMatchCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match <message.json>",
		Short: "Show which components would render a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, flags, log, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runMatch(cmd *cobra.Command, flags *rootFlags, log *logger.Logger, path string, opts *matchOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading message file: %w", err)
	}

	msg, err := message.FromJSON(data)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	results := matcher.New(nil, log).Match(msg, cfg)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("No rule matched; nothing would render."))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Matched components"))

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "RULE\tCOMPONENT\tPASSTHROUGH")
	for _, result := range results {
		passthrough := ""
		if result.Passthrough {
			passthrough = passthroughStyle.Render("yes")
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", ruleStyle.Render(result.Rule), result.Component, passthrough)
	}
	return writer.Flush()
}
