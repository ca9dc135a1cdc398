package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/shelfstats/shelfstats-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "shelfstats",
	Short: "Shelfstats CLI: narrated analysis of book sales data",
	Long:  `Shelfstats reads a book sales export (book,review,state,price), cleans it, derives review scores, and produces a narrated markdown report with purchase and revenue rankings.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.shelfstats/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in mappings
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded config, or defaults when loading failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		StateNames:          cfgpkg.DefaultStateNames,
		ReviewScores:        cfgpkg.DefaultReviewScores,
		HighReviewThreshold: 4,
		SampleRows:          5,
	}
}
