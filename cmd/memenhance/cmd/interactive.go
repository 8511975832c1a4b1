package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive [file]",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for exploring memes.

Features:
  - Type a line and watch its faces being detected
  - See the columns and circle geometry of every meme
  - Scroll through a whole text file with faces highlighted
  - List the faces recorded in the catalog

Controls:
  Tab     Select next face
  Ctrl+Y  Copy the SVG of the line
  Esc     Menu / quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
