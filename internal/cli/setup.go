// Package cli provides the command-line layer for dayscaffold. It resolves the
// day range from config, arguments and prompts, and drives the scaffolder.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/zoro11031/day-scaffold/internal/common"
	"github.com/zoro11031/day-scaffold/internal/config"
	"github.com/zoro11031/day-scaffold/internal/scaffold"
	"github.com/zoro11031/day-scaffold/internal/system"
	"github.com/zoro11031/day-scaffold/internal/ui"
)

// ScaffoldContext holds all dependencies needed for a scaffold run
type ScaffoldContext struct {
	Config *config.Config
	UI     *ui.UI
	FS     system.FileSystemManager
}

// NewScaffoldContext creates a ScaffoldContext writing to stdout/stderr
func NewScaffoldContext(flags *pflag.FlagSet, configPath string) (*ScaffoldContext, error) {
	return NewScaffoldContextWithOptions(flags, configPath, ui.New(), system.NewFileSystem())
}

// NewScaffoldContextWithOptions creates a ScaffoldContext with a custom UI and file system
func NewScaffoldContextWithOptions(flags *pflag.FlagSet, configPath string, u *ui.UI, fs system.FileSystemManager) (*ScaffoldContext, error) {
	cfg := config.New()
	if err := cfg.Load(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags != nil {
		if err := cfg.BindFlags(flags); err != nil {
			return nil, err
		}
	}
	if used := cfg.ConfigFileUsed(); used != "" {
		u.Infof("Using config file %s", used)
	}

	return &ScaffoldContext{
		Config: cfg,
		UI:     u,
		FS:     fs,
	}, nil
}

// ParseRangeArgs parses optional positional [start] [end] arguments.
// It returns ok=false when no arguments were given.
func ParseRangeArgs(args []string) (start, end int, ok bool, err error) {
	switch len(args) {
	case 0:
		return 0, 0, false, nil
	case 2:
	default:
		return 0, 0, false, fmt.Errorf("expected [start] [end], got %d argument(s)", len(args))
	}

	start, err = common.ParseInteger(args[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid start: %w", err)
	}
	end, err = common.ParseInteger(args[1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid end: %w", err)
	}
	return start, end, true, nil
}

// ResolveRange applies positional arguments over the configured range, then
// prompts for both values when interactive is set.
func (c *ScaffoldContext) ResolveRange(args []string, interactive bool) (start, end int, err error) {
	argStart, argEnd, ok, err := ParseRangeArgs(args)
	if err != nil {
		return 0, 0, err
	}
	if ok {
		c.Config.Set(config.KeyStart, argStart)
		c.Config.Set(config.KeyEnd, argEnd)
	}

	start, end, err = c.Config.Range()
	if err != nil {
		return 0, 0, err
	}

	if interactive {
		if start, err = c.UI.PromptInt("First day", start); err != nil {
			return 0, 0, fmt.Errorf("failed to prompt for start: %w", err)
		}
		if end, err = c.UI.PromptInt("Last day", end); err != nil {
			return 0, 0, fmt.Errorf("failed to prompt for end: %w", err)
		}
	}

	return start, end, nil
}

// Run scaffolds the range and prints a summary to the status writer.
// Errors from the scaffolder are returned unchanged.
func (c *ScaffoldContext) Run(start, end int) error {
	s := scaffold.New(c.FS, c.UI, c.Config.Dir())
	if err := s.Run(start, end); err != nil {
		return err
	}

	if n := (scaffold.Range{Start: start, End: end}).Len(); n > 0 {
		c.UI.Successf("Scaffolded %d folder(s) in %s", n, s.BaseDir())
	}
	return nil
}

// Plan prints the entries a run would create without touching the disk
func (c *ScaffoldContext) Plan(start, end int) {
	_ = scaffold.Plan(start, end, func(entry scaffold.Entry) error {
		c.UI.Printf("Would create: %s", entry.RelPath())
		return nil
	})
}
