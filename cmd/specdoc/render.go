package main

import (
	"os"

	"github.com/dgallion1/specdoc/internal/render"
	"github.com/spf13/cobra"
)

var renderOutput string
var renderSections []string
var renderDingus string
var renderNoNumbers bool
var renderNoRules bool

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render a Markdown or HTML document as numbered HTML",
	Long: `Render a Markdown or HTML document as numbered HTML.

Each --section keeps that section and everything nested under it; the rest
of the document is dropped. Section titles are matched before numbering.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		r := render.New(render.Options{
			Exclude:   rules,
			DingusURL: renderDingus,
			NoNumbers: renderNoNumbers,
			NoRules:   renderNoRules,
		}, newLogger(cmd.ErrOrStderr()))
		out, err := r.Render(doc, renderSections)
		if err != nil {
			return err
		}

		if renderOutput == "" || renderOutput == "-" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		return os.WriteFile(renderOutput, out, 0o644)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write HTML to this file instead of stdout")
	renderCmd.Flags().StringArrayVarP(&renderSections, "section", "s", nil, "Keep only this section (repeatable)")
	renderCmd.Flags().StringVar(&renderDingus, "dingus", render.DefaultDingusURL, "Base URL for example \"Try it\" links")
	renderCmd.Flags().BoolVar(&renderNoNumbers, "no-numbers", false, "Leave headings unnumbered")
	renderCmd.Flags().BoolVar(&renderNoRules, "no-rules", false, "Do not insert <hr> before top-level headings")

	rootCmd.AddCommand(renderCmd)
}
