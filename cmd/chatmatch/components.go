package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conversive/chatmatch/internal/catalog"
)

func newComponentsCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Manage the catalog of render components",
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to the catalog file (default ~/.chatmatch/catalog.json)")

	cmd.AddCommand(newComponentsListCmd(&catalogPath))
	cmd.AddCommand(newComponentsAddCmd(&catalogPath))
	cmd.AddCommand(newComponentsRemoveCmd(&catalogPath))

	return cmd
}

func openCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		var err error
		path, err = defaultCatalogPath()
		if err != nil {
			return nil, err
		}
	}
	return catalog.New(path)
}

func newComponentsListCmd(catalogPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(*catalogPath)
			if err != nil {
				return err
			}

			cat.SeedBuiltins(time.Now())
			if err := cat.Save(); err != nil {
				return err
			}

			components := cat.List()
			if len(components) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("No components cataloged."))
				return nil
			}

			useUnicode := supportsUnicode(cmd.OutOrStdout())

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, " \tNAME\tRULE\tKIND\tENABLED")
			for _, component := range components {
				icon := "*"
				if useUnicode {
					icon = component.Kind.Icon()
				}
				marker := lipgloss.NewStyle().Foreground(component.Kind.Color()).Render(icon)
				enabled := "yes"
				if !component.Enabled {
					enabled = dimStyle.Render("no")
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", marker, component.Name, component.Rule, component.Kind, enabled)
			}
			return writer.Flush()
		},
	}
}

func newComponentsAddCmd(catalogPath *string) *cobra.Command {
	var rule, description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Catalog a plugin-contributed component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(*catalogPath)
			if err != nil {
				return err
			}

			component := catalog.Component{
				Name:         args[0],
				Rule:         rule,
				Kind:         catalog.KindPlugin,
				Description:  description,
				Enabled:      true,
				RegisteredAt: time.Now(),
			}

			if err := cat.Add(component); err != nil {
				return err
			}
			if err := cat.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cataloged component %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&rule, "rule", "", "Matcher rule that selects this component")
	cmd.Flags().StringVar(&description, "description", "", "Human-readable description")

	return cmd
}

func newComponentsRemoveCmd(catalogPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a plugin component from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(*catalogPath)
			if err != nil {
				return err
			}

			if err := cat.Remove(args[0]); err != nil {
				return err
			}
			if err := cat.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed component %s\n", args[0])
			return nil
		},
	}
}
