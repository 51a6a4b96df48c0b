package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [start end]",
	Short: "Show the folders and files a run would create",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}

	start, end, err := ctx.ResolveRange(args, interactive)
	if err != nil {
		return err
	}

	ctx.UI.Header(fmt.Sprintf("Plan: Day%d to Day%d in %s", start, end, ctx.Config.Dir()))
	ctx.Plan(start, end)
	return nil
}
