package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int(KeyStart, 1, "")
	flags.Int(KeyEnd, 10, "")
	flags.String(KeyDir, ".", "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return flags
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dayscaffold.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := New()

	start, end, err := cfg.Range()
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if start != 1 || end != 10 {
		t.Errorf("Range() = (%d, %d), want (1, 10)", start, end)
	}
	if cfg.Dir() != "." {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), ".")
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		env       map[string]string
		args      []string
		wantStart int
		wantEnd   int
		wantDir   string
	}{
		{
			name:      "config file over defaults",
			file:      "start: 3\nend: 5\ndir: notes\n",
			wantStart: 3,
			wantEnd:   5,
			wantDir:   "notes",
		},
		{
			name:      "environment over config file",
			file:      "start: 3\nend: 5\n",
			env:       map[string]string{"DAYSCAFFOLD_START": "4"},
			wantStart: 4,
			wantEnd:   5,
			wantDir:   ".",
		},
		{
			name:      "flags over environment",
			env:       map[string]string{"DAYSCAFFOLD_END": "20", "DAYSCAFFOLD_DIR": "env-dir"},
			args:      []string{"--end", "7", "--dir", "flag-dir"},
			wantStart: 1,
			wantEnd:   7,
			wantDir:   "flag-dir",
		},
		{
			name:      "unset flags do not mask environment",
			env:       map[string]string{"DAYSCAFFOLD_END": "20"},
			args:      []string{"--start", "2"},
			wantStart: 2,
			wantEnd:   20,
			wantDir:   ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := New()
			if tt.file != "" {
				if err := cfg.Load(writeConfigFile(t, tt.file)); err != nil {
					t.Fatalf("Load() error = %v", err)
				}
			}
			if err := cfg.BindFlags(newFlagSet(t, tt.args...)); err != nil {
				t.Fatalf("BindFlags() error = %v", err)
			}

			start, end, err := cfg.Range()
			if err != nil {
				t.Fatalf("Range() error = %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Range() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
			if cfg.Dir() != tt.wantDir {
				t.Errorf("Dir() = %q, want %q", cfg.Dir(), tt.wantDir)
			}
		})
	}
}

func TestSetOverridesFlags(t *testing.T) {
	cfg := New()
	if err := cfg.BindFlags(newFlagSet(t, "--start", "2")); err != nil {
		t.Fatalf("BindFlags() error = %v", err)
	}
	cfg.Set(KeyStart, 9)

	start, _, err := cfg.Range()
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if start != 9 {
		t.Errorf("start = %d, want 9", start)
	}
}

func TestInvalidEnvironmentValue(t *testing.T) {
	t.Setenv("DAYSCAFFOLD_START", "first")

	if _, _, err := New().Range(); err == nil {
		t.Error("Expected error for non-integer DAYSCAFFOLD_START")
	}
}

func TestLoad(t *testing.T) {
	cfg := New()
	if err := cfg.Load(""); err != nil {
		t.Errorf("Load(\"\") error = %v, want nil", err)
	}
	if cfg.ConfigFileUsed() != "" {
		t.Errorf("ConfigFileUsed() = %q, want empty", cfg.ConfigFileUsed())
	}

	if err := New().Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error loading a missing config file")
	}

	path := writeConfigFile(t, "start: 2\n")
	cfg = New()
	if err := cfg.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed() = %q, want %q", cfg.ConfigFileUsed(), path)
	}
}

func TestBlankDirFallsBackToDefault(t *testing.T) {
	cfg := New()
	cfg.Set(KeyDir, "  ")
	if cfg.Dir() != "." {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), ".")
	}
}
