package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/memenhance/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize memenhance configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

The file holds:
  - render:  cell size, font, padding and output switches
  - catalog: whether faces are recorded, and where

Every setting can also be overridden with a MEMENHANCE_* environment
variable, e.g. MEMENHANCE_TEXT_WIDTH=10.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Set catalog.enabled to true to keep a record of your faces")
	fmt.Fprintln(out, "  2. Run 'memenhance inspect <text>' to see how a line is analysed")
	fmt.Fprintln(out, "  3. Run 'memenhance render <file> -o out.svg' to draw the memes")
	return nil
}
