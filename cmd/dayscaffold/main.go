package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/day-scaffold/internal/cli"
	"github.com/zoro11031/day-scaffold/pkg/version"
)

// start, end and dir are read through viper, so only these two need variables
var (
	configFile  string
	interactive bool
)

var rootCmd = &cobra.Command{
	Use:   "dayscaffold",
	Short: "Scaffold numbered Day folders with task placeholders",
	Long: `Create one folder per day with a placeholder markdown file inside.

For every day N in the range, dayscaffold makes sure DayN/ exists and writes
DayN/DayN-Tasks-and-Answers.md. Existing folders are reused and existing
files are overwritten.

Run without arguments to scaffold Day1 through Day10 in the current directory.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	Args:          cobra.NoArgs,
	RunE:          runScaffold,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("start", 1, "First day to scaffold (inclusive)")
	flags.Int("end", 10, "Last day to scaffold (inclusive)")
	flags.String("dir", ".", "Directory to create the Day folders in")
	flags.StringVar(&configFile, "config", "", "Path to a YAML config file")
	flags.BoolVar(&interactive, "interactive", false, "Prompt for the start and end days")

	rootCmd.AddCommand(versionCmd)
}

func newContext(cmd *cobra.Command) (*cli.ScaffoldContext, error) {
	ctx, err := cli.NewScaffoldContext(cmd.Flags(), configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scaffold context: %w", err)
	}
	return ctx, nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}

	start, end, err := ctx.ResolveRange(args, interactive)
	if err != nil {
		return err
	}
	return ctx.Run(start, end)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
