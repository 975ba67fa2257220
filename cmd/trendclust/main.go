// Command trendclust clusters the daily samples of a price series by trend
// shape and volatility shape.
//
//	trendclust synth --days 20 --shape mixed --out data.csv
//	trendclust run --input data.csv --format yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd is the base command for the trendclust CLI
var rootCmd = &cobra.Command{
	Use:   "trendclust",
	Short: "Two-stage trend/volatility clustering of price series",
	Long: `trendclust slices a price series into fixed-length samples, reduces each
sample to its trend changepoints, clusters the samples by DTW distance between
changepoint sequences and, optionally, re-clusters each trend cluster by the
shape of its per-segment realized volatility.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	pf.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text, json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
