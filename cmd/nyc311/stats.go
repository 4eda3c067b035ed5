package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencivic/nyc311/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Load the dataset and print a statistical summary",
	Long: `Stats loads the full dataset and prints totals, the created-date
range, borough and status distributions, and the top complaint types.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := requireInput(); err != nil {
		return err
	}

	st := newStore(inputPath)

	start := time.Now()
	n, err := st.Load(inputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d records in %s (%d of %d rows skipped)\n",
		n, time.Since(start).Round(time.Millisecond), st.SkippedRows(), st.TotalRows())

	output.RenderSummary(os.Stdout, st.Stats())
	return nil
}
