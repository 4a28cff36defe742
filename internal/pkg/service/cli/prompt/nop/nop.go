// Package nop implements a non-interactive prompt, each question is answered by its default value.
package nop

import (
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
)

type Prompt struct{}

func New() *Prompt {
	return &Prompt{}
}

func (p *Prompt) IsInteractive() bool {
	return false
}

func (p *Prompt) Printf(string, ...any) {
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	return c.Default
}

// Ask returns the default value, ok is false if there is no default.
func (p *Prompt) Ask(q *prompt.Question) (string, bool) {
	return q.Default, q.Default != ""
}

func (p *Prompt) Select(s *prompt.Select) (string, bool) {
	return s.Default, s.UseDefault
}

func (p *Prompt) MultiSelect(s *prompt.MultiSelect) ([]string, bool) {
	return s.Default, len(s.Default) > 0
}
