package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgallion1/specdoc/internal/doctree"
	"github.com/dgallion1/specdoc/internal/parser"
	"github.com/spf13/cobra"
)

var outlineNumbered bool
var outlineRank int
var outlineStrict bool
var outlineJSON bool

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the section outline of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if outlineRank < 0 || outlineRank > 6 {
			return fmt.Errorf("--rank must be between 1 and 6")
		}
		rules, err := loadRules()
		if err != nil {
			return err
		}

		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}
		tree, err := doctree.Build(doc.Title, doc.Nodes, doctree.BuildOptions{
			Number:  outlineNumbered,
			Exclude: rules,
			MaxRank: outlineRank,
			Strict:  outlineStrict,
		})
		if err != nil {
			return err
		}

		if outlineJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		}
		FormatOutline(cmd.OutOrStdout(), tree)
		return nil
	},
}

func init() {
	outlineCmd.Flags().BoolVarP(&outlineNumbered, "numbered", "n", false, "Number headings before printing")
	outlineCmd.Flags().IntVarP(&outlineRank, "rank", "r", 0, "Deepest heading rank to show (0 = all)")
	outlineCmd.Flags().BoolVar(&outlineStrict, "strict", false, "Fail on skipped heading ranks")
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "Print the outline as JSON")

	rootCmd.AddCommand(outlineCmd)
}

func parseFile(path string) (*parser.Document, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(f, path)
}
