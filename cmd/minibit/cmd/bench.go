package cmd

import (
	"github.com/sameteraslan/minibit/pkg/bench"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the codec performance test suite",
	Long: `Measure trade message encode, decode and roundtrip throughput.

Example:
  minibit bench --count 100000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		return bench.RunPerfTest(count)
	},
}

func init() {
	benchCmd.Flags().Int("count", 100_000, "Number of operations per benchmark")
	rootCmd.AddCommand(benchCmd)
}
