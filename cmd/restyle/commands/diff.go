package commands

import (
	"fmt"

	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	var oldDecls, newDecls string
	var explain bool
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Classify the change between two CSS declaration blocks",
		Long: `Diff computes the styles of a block element for two CSS declaration
blocks and prints the restyle damage of changing from the old to the new styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oldStyle, err := computed.FromDeclarations(oldDecls)
			if err != nil {
				return fmt.Errorf("old styles: %w", err)
			}
			newStyle, err := computed.FromDeclarations(newDecls)
			if err != nil {
				return fmt.Errorf("new styles: %w", err)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, c.classifier.Difference(oldStyle, newStyle))
			if explain {
				_, reason := c.classifier.Explain(oldStyle, newStyle)
				_, _ = fmt.Fprintf(out, "reason: %v\n", reason)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&oldDecls, "old", "", "old CSS declarations, e.g. \"width: 10pt\"")
	cmd.Flags().StringVar(&newDecls, "new", "", "new CSS declarations")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the rule responsible for the damage")
	return cmd
}
