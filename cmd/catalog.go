package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bokibattle/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in question templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, err := kindsFlag(cmd)
		if err != nil {
			return err
		}
		templates, err := catalog.Templates(kinds...)
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %-8s  %s\n", "ID", "Kind", "Example")
		fmt.Println(strings.Repeat("─", 80))
		for _, t := range templates {
			fmt.Printf("%-24s  %-8s  %s\n", t.ID, t.Kind, t.Text(100000, catalog.Counterparties()[0]))
		}

		counts := catalog.Count()
		var parts []string
		for _, k := range catalog.AllKinds() {
			parts = append(parts, fmt.Sprintf("%s %d", k.Label(), counts[k]))
		}
		fmt.Printf("\n%d templates (%s)\n", len(templates), strings.Join(parts, ", "))
		return nil
	},
}

// kindsFlag parses the repeatable --kind flag.
func kindsFlag(cmd *cobra.Command) ([]catalog.Kind, error) {
	vals, _ := cmd.Flags().GetStringSlice("kind")
	var kinds []catalog.Kind
	for _, v := range vals {
		k, err := catalog.ParseKind(v)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func init() {
	catalogCmd.Flags().StringSliceP("kind", "k", nil, "Question kinds to list (journal, select, numeric)")
}
