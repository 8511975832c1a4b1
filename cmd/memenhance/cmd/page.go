package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/memenhance/internal/page"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page [file]",
	Short: "Write an HTML page showing a text next to its memes",
	Long: `Render a text like 'render' does and write an HTML page showing the
source text next to the SVG. The SVG is written to a separate file
referenced by the page, or embedded with --inline.

Example:
  memenhance page notes.txt
  memenhance page notes.txt --inline -o notes.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.Flags().StringP("output", "o", "emoji.html", "HTML output file")
	pageCmd.Flags().String("svg", "emoji.svg", "SVG output file referenced by the page")
	pageCmd.Flags().Bool("inline", false, "embed the SVG in the page")
	addRenderFlags(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyRenderFlags(cmd, cfg); err != nil {
		return err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	text, err := readInput(path)
	if err != nil {
		return err
	}
	doc, _ := renderDocument(cfg, text)

	output, _ := cmd.Flags().GetString("output")
	svgFile, _ := cmd.Flags().GetString("svg")
	inline, _ := cmd.Flags().GetBool("inline")

	data := page.Data{Title: "memenhance", Source: text}
	if path != "" && path != "-" {
		data.Title = filepath.Base(path)
	}
	if inline {
		data.SVG = doc.String()
	} else {
		if err := writeSVG(cmd, svgFile, doc); err != nil {
			return err
		}
		// The page references the SVG relative to its own location
		rel, err := filepath.Rel(filepath.Dir(output), svgFile)
		if err != nil {
			rel = svgFile
		}
		data.SVGFile = filepath.ToSlash(rel)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()
	if err := page.Write(f, data); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}
