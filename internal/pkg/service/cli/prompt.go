package cli

import (
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt/interactive"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt/nop"
)

// NewPrompt returns the interactive prompt, if it is allowed and the stdin is a terminal.
func NewPrompt(stdin io.Reader, stdout io.Writer, stderr io.Writer, nonInteractive bool) prompt.Prompt {
	if nonInteractive {
		return nop.New()
	}

	in, ok := stdin.(terminal.FileReader)
	if !ok || !isTerminal(stdin) {
		return nop.New()
	}
	out, ok := stdout.(terminal.FileWriter)
	if !ok {
		return nop.New()
	}
	return interactive.New(in, out, stderr)
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
