// Package cmd - platform and category listing
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// platformsCmd lists the platforms in the fee schedule
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range catalog.Platforms() {
			if catalog.IsCategorized(p) {
				fmt.Fprintf(out, "%s (per category)\n", p)
				continue
			}
			model, _ := catalog.Lookup(p, "")
			fmt.Fprintf(out, "%s %s\n", p, model)
		}
		return nil
	},
}

// categoriesCmd lists a categorized platform's categories
var categoriesCmd = &cobra.Command{
	Use:   "categories <platform>",
	Short: "List a platform's fee categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		categories, err := catalog.CategoriesFor(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range categories {
			model, _ := catalog.Lookup(args[0], c)
			fmt.Fprintf(out, "%-24s %s\n", c, model)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(categoriesCmd)
}
