package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/memenhance/internal/catalog"
	"github.com/f3rmion/memenhance/internal/clipboard"
	"github.com/f3rmion/memenhance/internal/config"
	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/f3rmion/memenhance/internal/svg"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the memes of a text as SVG",
	Long: `Read a text file (or stdin when no file or '-' is given), detect
the emoticon faces on every line and write an SVG document with a circle
around each face.

Example:
  memenhance render notes.txt -o notes.svg
  echo '(╯°□°)╯ ┻━┻' | memenhance render --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "output file (default is stdout)")
	addRenderFlags(renderCmd)
	renderCmd.Flags().Bool("copy", false, "copy the SVG to the clipboard")
	renderCmd.Flags().Bool("record", false, "record the faces in the catalog")
}

// addRenderFlags adds the flags overriding the render configuration.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("text-width", 0, "pixel width of a character cell")
	cmd.Flags().Float64("text-height", 0, "pixel height of a character cell")
	cmd.Flags().Bool("parallel", false, "analyse lines concurrently")
	cmd.Flags().Bool("show-rest", false, "draw the residual text beneath the memes")
}

// applyRenderFlags copies explicitly set flags into cfg.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("text-width") {
		cfg.Render.TextWidth, _ = flags.GetFloat64("text-width")
	}
	if flags.Changed("text-height") {
		cfg.Render.TextHeight, _ = flags.GetFloat64("text-height")
	}
	if flags.Changed("parallel") {
		cfg.Render.Parallel, _ = flags.GetBool("parallel")
	}
	if flags.Changed("show-rest") {
		cfg.Render.ShowRest, _ = flags.GetBool("show-rest")
	}
	return cfg.Settings().Validate()
}

// readInput reads a file, or stdin for "" and "-".
func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// renderDocument renders text into an SVG document following cfg.
func renderDocument(cfg *config.Config, text string) (*svg.Document, layout.Result) {
	res := newRenderer(cfg).Render(text)
	doc := svg.NewDocument(res, cfg.Settings())
	doc.FontFamily = cfg.Render.FontFamily
	doc.FontSize = cfg.Render.FontSize
	doc.ShowRest = cfg.Render.ShowRest
	return doc, res
}

func runRender(cmd *cobra.Command, args []string) error {
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
	doc, res := renderDocument(cfg, text)

	output, _ := cmd.Flags().GetString("output")
	if err := writeSVG(cmd, output, doc); err != nil {
		return err
	}

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.Write(doc.String()); err != nil {
			return fmt.Errorf("copying SVG: %w", err)
		}
		fmt.Fprintln(os.Stderr, "SVG copied to clipboard")
	}

	if record, _ := cmd.Flags().GetBool("record"); record {
		cfg.Catalog.Enabled = true
		if err := recordFaces(cmd.Context(), cfg, res); err != nil {
			return err
		}
	}
	return nil
}

// writeSVG writes doc to the output file, or to stdout for "".
func writeSVG(cmd *cobra.Command, output string, doc *svg.Document) error {
	if output == "" {
		if _, err := doc.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
		return nil
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

// recordFaces adds the memes of every line to the catalog.
func recordFaces(ctx context.Context, cfg *config.Config, res layout.Result) error {
	cat, err := openCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer cat.Close()
	return recordBodies(ctx, cat, res)
}

func recordBodies(ctx context.Context, cat *catalog.Catalog, res layout.Result) error {
	n := 0
	for _, b := range res.Bodies {
		if err := cat.Record(ctx, b.Memes); err != nil {
			return err
		}
		n += len(b.Memes)
	}
	fmt.Fprintf(os.Stderr, "Recorded %d faces\n", n)
	return nil
}
