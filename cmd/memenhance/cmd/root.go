// Package cmd contains all CLI commands for memenhance.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/memenhance/internal/catalog"
	"github.com/f3rmion/memenhance/internal/config"
	"github.com/f3rmion/memenhance/internal/layout"
	"github.com/f3rmion/memenhance/internal/tui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memenhance",
	Short: "Circle the emoticon faces in your text",
	Long: `memenhance scans text for parenthesized emoticon faces like (^_^) or
(╯°□°)╯ and renders them as an SVG overlay: every face gets a circle, the
face itself is drawn centered in it and the words glued to its sides are
placed left and right of the circle.

Running 'memenhance' without arguments launches the interactive TUI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
	RunE:              runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/memenhance)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print debug traces to stderr")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("MEMENHANCE")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// selector hands out one tracer for every key.
type selector struct {
	tracer tracing.Trace
}

func (s selector) Select(string) tracing.Trace {
	return s.tracer
}

// setupTracing routes all package traces to the Go logger when --verbose
// is set. Traces are discarded otherwise.
func setupTracing(cmd *cobra.Command, args []string) error {
	trace := gologadapter.GetAdapter()()
	if viper.GetBool("verbose") {
		trace.SetTraceLevel(tracing.LevelDebug)
	} else {
		trace.SetTraceLevel(tracing.LevelError)
	}
	tracing.SetTraceSelector(selector{tracer: trace})
	return nil
}

// loadConfig reads config.yaml from the config directory and applies the
// MEMENHANCE_* environment overrides, e.g. MEMENHANCE_FONT_SIZE=16.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(getConfigDir(), config.FileName))
	if err != nil {
		return nil, err
	}
	r := &cfg.Render
	overrides := map[string]func(){
		"text_width":   func() { r.TextWidth = viper.GetFloat64("text_width") },
		"text_height":  func() { r.TextHeight = viper.GetFloat64("text_height") },
		"font_family":  func() { r.FontFamily = viper.GetString("font_family") },
		"font_size":    func() { r.FontSize = viper.GetFloat64("font_size") },
		"padding":      func() { r.Padding = viper.GetInt("padding") },
		"parallel":     func() { r.Parallel = viper.GetBool("parallel") },
		"show_rest":    func() { r.ShowRest = viper.GetBool("show_rest") },
		"catalog":      func() { cfg.Catalog.Enabled = viper.GetBool("catalog") },
		"catalog_path": func() { cfg.Catalog.Path = viper.GetString("catalog_path") },
	}
	for key, apply := range overrides {
		if viper.IsSet(key) {
			apply()
		}
	}
	if err := cfg.Settings().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRenderer creates a renderer from the configuration.
func newRenderer(cfg *config.Config) *layout.Renderer {
	r := layout.NewRenderer(cfg.Settings())
	r.SetPadding(cfg.Render.Padding)
	r.SetParallel(cfg.Render.Parallel)
	return r
}

// openCatalog opens the face catalog, or returns nil when it is disabled.
func openCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	if !cfg.Catalog.Enabled {
		return nil, nil
	}
	dir := getConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	return catalog.Open(ctx, cfg.CatalogPath(dir))
}

// runTUI launches the TUI application, optionally with a text file loaded.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cat, err := openCatalog(cmd.Context(), cfg)
	if err != nil {
		// The TUI works without a catalog
		fmt.Fprintf(os.Stderr, "Warning: face catalog unavailable: %v\n", err)
	}
	if cat != nil {
		defer cat.Close()
	}

	r := newRenderer(cfg)
	app := tui.NewApp(r, cat)
	if len(args) > 0 {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		app = tui.NewAppWithDocument(r, cat, args[0], text)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
