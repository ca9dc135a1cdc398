package cmd

import (
	"fmt"

	cfgpkg "github.com/shelfstats/shelfstats-cli/internal/config"
	"github.com/spf13/cobra"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "View or initialize the state and review mapping tables",
}

var mappingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective mapping configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Println("state_names:")
		for _, s := range c.StateNames {
			fmt.Printf("  %s: %s\n", s.Code, s.Name)
		}
		fmt.Println("review_scores:")
		for _, r := range c.ReviewScores {
			fmt.Printf("  %s: %d\n", r.Label, r.Score)
		}
		fmt.Printf("high_review_threshold: %d\n", c.HighReviewThreshold)
		return nil
	},
}

var mappingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config with the default mapping tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingsCmd)
	mappingsCmd.AddCommand(mappingsShowCmd)
	mappingsCmd.AddCommand(mappingsInitCmd)
}
