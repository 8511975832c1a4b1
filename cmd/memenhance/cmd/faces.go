package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/f3rmion/memenhance/internal/catalog"
	"github.com/spf13/cobra"
)

var facesCmd = &cobra.Command{
	Use:   "faces [face]",
	Short: "List the faces recorded in the catalog",
	Long: `List the most frequent faces recorded by 'render --record' or the TUI,
or show the record of a single face.

Example:
  memenhance faces --limit 10
  memenhance faces '^_^'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)
	facesCmd.Flags().IntP("limit", "n", 20, "maximum number of faces to list")
}

func runFaces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.Catalog.Enabled = true
	if _, err := os.Stat(cfg.CatalogPath(getConfigDir())); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), "No faces recorded yet. Use 'memenhance render --record'.")
		return nil
	}
	cat, err := openCatalog(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer cat.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		e, err := cat.Lookup(cmd.Context(), args[0])
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(out, "(%s) was never recorded\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Face:       (%s)\n", e.Face)
		fmt.Fprintf(out, "Count:      %d\n", e.Count)
		fmt.Fprintf(out, "Sample:     %s\n", e.Sample)
		fmt.Fprintf(out, "First seen: %s\n", e.FirstSeen.Format("2006-01-02 15:04"))
		fmt.Fprintf(out, "Last seen:  %s\n", e.LastSeen.Format("2006-01-02 15:04"))
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := cat.Top(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No faces recorded yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%5d  (%s)  %s\n", e.Count, e.Face, e.Sample)
	}
	return nil
}
