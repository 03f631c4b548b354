package commands

import (
	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/spf13/cobra"
)

func (c *CLI) newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in restyle catalog as YAML",
		Long: `Catalog prints the built-in restyle catalog in YAML format. The output
may be edited and used with flag --catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return computed.WriteEntries(cmd.OutOrStdout(), computed.DefaultEntries())
		},
	}
}
