// Package dialog contains questions asked by commands, when a value is not set by an argument, a flag or ENV.
package dialog

import (
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
)

type Dialogs struct {
	prompt.Prompt
}

func New(prompt prompt.Prompt) *Dialogs {
	return &Dialogs{Prompt: prompt}
}
