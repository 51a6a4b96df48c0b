package ui

import (
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2"
)

func TestPromptsWriteToStderr(t *testing.T) {
	var opts survey.AskOptions
	if err := promptStdio(&opts); err != nil {
		t.Fatalf("promptStdio() error = %v", err)
	}

	if opts.Stdio.In != os.Stdin {
		t.Error("prompts should read from stdin")
	}
	if opts.Stdio.Out != os.Stderr {
		t.Error("prompts should render on stderr, not stdout")
	}
	if opts.Stdio.Err != os.Stderr {
		t.Error("prompt errors should go to stderr")
	}
}
