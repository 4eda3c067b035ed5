package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencivic/nyc311/reader"
	"github.com/opencivic/nyc311/store"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:   "nyc311",
	Short: "Scan and query the NYC 311 service-request dataset",
	Long: `nyc311 loads a NYC 311 service-request export into a compact in-memory
representation and answers ad-hoc predicate queries against it.

Input may be the raw comma-delimited export (optionally gzip or zstd
compressed) or a parquet encoding of the same columns; the format is
chosen by file extension.

Examples:
  # Dataset statistics
  nyc311 stats -i 311_2010_2019.csv

  # All noise complaints in Brooklyn, as a table
  nyc311 query -i 311_2010_2019.csv --borough BROOKLYN --complaint noise -f table

  # Everything NYPD closed in 2015, as JSON lines
  nyc311 query -i data.csv.gz --agency NYPD --status Closed \
      --from "01/01/2015 12:00:00 AM" --to "12/31/2015 11:59:59 PM"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Dataset file (.csv, .csv.gz, .csv.zst, or .parquet)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newSource picks the transport for the input path by extension.
func newSource(path string) reader.Source {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return reader.NewParquetSource()
	}
	return reader.NewCSVSource()
}

// newStore builds a DataStore over the right source for the input path.
func newStore(path string) *store.DataStore {
	return store.New(newSource(path))
}

// requireInput validates the shared --input flag.
func requireInput() error {
	if inputPath == "" {
		return fmt.Errorf("missing required flag: --input")
	}
	return nil
}
