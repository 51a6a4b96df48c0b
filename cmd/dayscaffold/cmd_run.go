package main

import (
	"github.com/spf13/cobra"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run [start end]",
	Short: "Scaffold a range of Day folders",
	Long: `Scaffold Day folders for an inclusive range.

The range comes from, in increasing priority: defaults (1 to 10), the config
file, DAYSCAFFOLD_START/DAYSCAFFOLD_END, --start/--end, and finally the two
positional arguments. A start after the end does nothing.

Examples:
  dayscaffold run 1 30
  dayscaffold run --start 11 --end 20 --dir notes
  dayscaffold run --dry-run 5 7`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			return runPlan(cmd, args)
		}
		return runScaffold(cmd, args)
	},
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be created without writing anything")

	rootCmd.AddCommand(runCmd)
}
