// Package commands implements the CLI commands for the restyle tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/npillmayer/restyle/restyle"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for restyle.
type CLI struct {
	rootCmd     *cobra.Command
	catalogFile string // YAML restyle catalog, empty for the built-in one
	traceLevel  string // Error, Info or Debug
	classifier  *restyle.Classifier[*computed.Style]
}

// New creates a new CLI instance.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "restyle",
		Short:         "Compute restyle damage for style changes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{rootCmd: rootCmd}
	rootCmd.PersistentFlags().StringVar(&c.catalogFile, "catalog", "",
		"YAML file with restyle catalog (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&c.traceLevel, "trace", "Error",
		"trace level: Error, Info or Debug")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := configureTracing(c.traceLevel); err != nil {
			return err
		}
		return c.loadClassifier()
	}

	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newCatalogCmd())

	return c
}

func (c *CLI) loadClassifier() error {
	if c.catalogFile == "" {
		c.classifier = computed.DefaultClassifier()
		return nil
	}
	cat, err := computed.LoadCatalogFile(c.catalogFile)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	c.classifier = restyle.NewClassifier(cat)
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
