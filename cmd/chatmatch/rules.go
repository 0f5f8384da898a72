package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/matcher"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in matching rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := matcher.BuiltinRules()

			if jsonOutput {
				type ruleInfo struct {
					Name        string `json:"name"`
					Component   string `json:"component"`
					Passthrough bool   `json:"passthrough"`
				}
				infos := make([]ruleInfo, 0, len(rules))
				for _, rule := range rules {
					infos = append(infos, ruleInfo{Name: rule.Name, Component: rule.Component, Passthrough: rule.Passthrough})
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(infos)
			}

			fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Built-in rules (evaluation order)"))

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "#\tRULE\tCOMPONENT\tPASSTHROUGH")
			for i, rule := range rules {
				passthrough := ""
				if rule.Passthrough {
					passthrough = passthroughStyle.Render("yes")
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i+1, ruleStyle.Render(rule.Name), rule.Component, passthrough)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
