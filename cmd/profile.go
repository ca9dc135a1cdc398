package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfstats/shelfstats-cli/internal/dataset"
	"github.com/shelfstats/shelfstats-cli/internal/profile"
)

var profileUniques bool

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Inspect a sales file without cleaning or deriving anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		rows, cols := profile.Shape(t)
		fmt.Printf("File: %s\nRows: %d\nColumns: %d\n", t.Name, rows, cols)
		for _, col := range dataset.Columns {
			uniques := profile.UniqueValues(t, col)
			fmt.Printf("- %s: %s (unique %d, missing %d)",
				col, profile.ColumnType(col), len(uniques), profile.MissingCount(t, col))
			if profile.ColumnType(col) == profile.Numeric {
				st, err := profile.SummaryStats(t, col)
				if err == nil && st.Count > 0 {
					fmt.Printf(" — min %.4g, max %.4g, mean %.4g", st.Min, st.Max, st.Mean)
				}
			} else if profileUniques {
				fmt.Printf(": %s", strings.Join(uniques, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().BoolVar(&profileUniques, "uniques", false, "list the distinct values of text columns")
}
