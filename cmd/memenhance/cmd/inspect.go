package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [text...]",
	Short: "Show the memes and residual text of a line",
	Long: `Analyse text and display for every line:
  - each meme with its face, columns and neighbor words
  - the circle drawn around the face
  - the residual text fragments
  - the residual text padded to the line width

Without arguments the text is read from stdin.

Example:
  memenhance inspect 'ヘ( ^_^)ノ ＼(^_^ )Gimme Five'`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var text string
	if len(args) == 0 {
		if text, err = readInput("-"); err != nil {
			return err
		}
		text = strings.TrimSuffix(text, "\n")
	} else {
		text = strings.Join(args, " ")
	}

	out := cmd.OutOrStdout()
	for row, body := range meme.Analyze(text) {
		printBody(out, row, body, cfg.Settings())
	}
	return nil
}

func printBody(out io.Writer, row int, body meme.Body, s layout.Settings) {
	fmt.Fprintf(out, "Line %d (width %d)\n", row+1, body.Width)
	if len(body.Memes) == 0 {
		fmt.Fprintln(out, "  No memes")
	}
	for i, m := range body.Memes {
		c := layout.HeadCircle(m.Head, row, s)
		fmt.Fprintf(out, "  Meme %d: %s(%s)%s\n", i+1, m.Left, m.Head.Face, m.Right)
		fmt.Fprintf(out, "    Face:    (%s) columns %d-%d\n", m.Head.Face, m.Head.StartColumn, m.Head.EndColumn)
		fmt.Fprintf(out, "    Left:    %q\n", m.Left)
		fmt.Fprintf(out, "    Right:   %q\n", m.Right)
		fmt.Fprintf(out, "    Unit:    columns %d-%d, codepoints %d-%d\n",
			m.StartColumn, m.EndColumn, m.StartIndex, m.EndIndex)
		fmt.Fprintf(out, "    Circle:  cx=%g cy=%g r=%g\n", c.CX, c.CY, c.R)
	}
	if len(body.Rest) > 0 {
		fmt.Fprintln(out, "  ---")
		fmt.Fprintln(out, "  Residual:")
		for _, f := range body.Rest {
			fmt.Fprintf(out, "    %3d %q\n", f.Column, f.Text)
		}
	}
	fmt.Fprintf(out, "  Unified: %q\n", meme.UnifyRestText(body))
	fmt.Fprintln(out)
}
