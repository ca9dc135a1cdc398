package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/shelfstats/shelfstats-cli/internal/dataset"
	"github.com/shelfstats/shelfstats-cli/internal/report"
	"github.com/shelfstats/shelfstats-cli/internal/utils"
)

var (
	repOutputPath string
	repJSON       bool
	repThreshold  int
	repSampleRows int
	repTables     bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Run the full analysis pipeline and produce a narrated report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		c := effectiveConfig()
		p := report.Params{
			StateNames:          c.StateNameMap(),
			ReviewScores:        c.ReviewScoreMap(),
			HighReviewThreshold: c.HighReviewThreshold,
			SampleRows:          c.SampleRows,
		}
		if cmd.Flags().Changed("threshold") {
			p.HighReviewThreshold = repThreshold
		}
		if repSampleRows > 0 {
			p.SampleRows = repSampleRows
		}

		rep, frame := report.Run(t, p)
		if debug {
			fmt.Fprintf(os.Stderr, "rows loaded: %d, surviving: %d\n", t.Len(), frame.Len())
		}

		md := rep.Markdown()
		if repOutputPath != "" {
			if err := utils.SafeWriteFile(repOutputPath, []byte(md)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("✓ Report written to %s\n", repOutputPath)
		} else {
			fmt.Print(md)
		}

		if repTables {
			renderAggregates(rep)
		}
		if repJSON {
			path, err := rep.SaveJSON(c.ReportsDir)
			if err != nil {
				return fmt.Errorf("save report json: %w", err)
			}
			fmt.Printf("✓ Report metadata saved to %s\n", path)
		}
		return nil
	},
}

// renderAggregates prints the two book rankings as terminal tables.
func renderAggregates(rep *report.Report) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Book", "Purchases"})
	for _, kc := range rep.TopByPurchases {
		tw.Append([]string{kc.Key, strconv.Itoa(kc.Count)})
	}
	tw.Render()

	tw = tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Book", "Revenue"})
	for _, ks := range rep.TopByRevenue {
		tw.Append([]string{ks.Key, fmt.Sprintf("$%.2f", ks.Sum)})
	}
	tw.Render()
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "write the markdown report to this path instead of stdout")
	reportCmd.Flags().BoolVar(&repJSON, "json", false, "also save report metadata as JSON under the reports dir")
	reportCmd.Flags().IntVar(&repThreshold, "threshold", 4, "review score at or above which a review counts as high")
	reportCmd.Flags().IntVar(&repSampleRows, "sample-rows", 0, "number of sample rows to include in the report")
	reportCmd.Flags().BoolVar(&repTables, "tables", false, "render the aggregate rankings as terminal tables")
}
