package commands

import (
	"fmt"
	"os"

	"github.com/npillmayer/restyle/dom"
	"github.com/npillmayer/restyle/dom/domdbg"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/restyle/dom/style/cssom/douceuradapter"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

type treeOptions struct {
	htmlFile string
	oldCSS   string
	newCSS   string
	dotFile  string
}

func (c *CLI) newTreeCmd() *cobra.Command {
	var opts treeOptions
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Restyle an HTML document and print the damaged tree",
		Long: `Tree styles an HTML document with an old stylesheet, then restyles it
with a new stylesheet. Style elements embedded in the document apply to
both runs. It prints the styled tree with the damage of every node, followed
by a summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runTree(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.htmlFile, "html", "", "HTML document")
	cmd.Flags().StringVar(&opts.oldCSS, "old", "", "stylesheet for the first styling run")
	cmd.Flags().StringVar(&opts.newCSS, "new", "", "stylesheet for restyling")
	cmd.Flags().StringVar(&opts.dotFile, "dot", "", "write the tree in GraphViz format to a file")
	_ = cmd.MarkFlagRequired("html")
	return cmd
}

func (c *CLI) runTree(cmd *cobra.Command, opts treeOptions) error {
	f, err := os.Open(opts.htmlFile)
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", opts.htmlFile, err)
	}
	var embedded []cssom.StyleSheet
	for _, s := range douceuradapter.ExtractStyleElements(doc) {
		embedded = append(embedded, s)
	}
	oldSheets, err := withSheet(embedded, opts.oldCSS)
	if err != nil {
		return err
	}
	newSheets, err := withSheet(embedded, opts.newCSS)
	if err != nil {
		return err
	}
	root, err := cssom.Style(doc, oldSheets...)
	if err != nil {
		return err
	}
	summary, err := dom.Restyle(root, c.classifier, newSheets...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprint(out, domdbg.PrintTree(root))
	_, _ = fmt.Fprintln(out, summary)
	if opts.dotFile != "" {
		dot, err := os.Create(opts.dotFile)
		if err != nil {
			return err
		}
		defer dot.Close()
		domdbg.ToGraphViz(dom.FromTreeNode(root), dot, nil)
	}
	return nil
}

// withSheet appends a stylesheet read from a file to a list of sheets.
// An empty file name appends nothing.
func withSheet(sheets []cssom.StyleSheet, file string) ([]cssom.StyleSheet, error) {
	r := append([]cssom.StyleSheet(nil), sheets...)
	if file == "" {
		return r, nil
	}
	text, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	sheet, err := douceuradapter.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return append(r, sheet), nil
}
