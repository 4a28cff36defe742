// Package interactive implements the prompt by the survey library.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type Prompt struct {
	stdin  terminal.FileReader
	stdout terminal.FileWriter
	stderr io.Writer
}

func New(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) *Prompt {
	return &Prompt{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (p *Prompt) IsInteractive() bool {
	return true
}

func (p *Prompt) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.stdout, format, a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	p.printDescription(c.Description)
	result := c.Default
	err := survey.AskOne(&survey.Confirm{Message: formatLabel(c.Label), Help: c.Help, Default: c.Default}, &result, p.opts()...)
	if !p.handleError(err) {
		return c.Default
	}
	return result
}

func (p *Prompt) Ask(q *prompt.Question) (string, bool) {
	p.printDescription(q.Description)
	opts := p.opts()
	if q.Validator != nil {
		opts = append(opts, survey.WithValidator(q.Validator))
	}

	var result string
	var err error
	if q.Hidden {
		if q.Default != "" {
			p.Printf("Leave blank for default value.\n")
		}
		err = survey.AskOne(&survey.Password{Message: formatLabel(q.Label), Help: q.Help}, &result, opts...)
		if err == nil && result == "" {
			result = q.Default
		}
	} else {
		err = survey.AskOne(&survey.Input{Message: formatLabel(q.Label), Help: q.Help, Default: q.Default}, &result, opts...)
	}
	return strings.TrimSpace(result), p.handleError(err)
}

func (p *Prompt) Select(s *prompt.Select) (string, bool) {
	p.printDescription(s.Description)
	opts := p.opts()
	if s.Validator != nil {
		opts = append(opts, survey.WithValidator(s.Validator))
	}

	q := &survey.Select{Message: formatLabel(s.Label), Help: s.Help, Options: s.Options}
	if s.UseDefault {
		q.Default = s.Default
	}

	var result string
	err := survey.AskOne(q, &result, opts...)
	return result, p.handleError(err)
}

func (p *Prompt) MultiSelect(s *prompt.MultiSelect) ([]string, bool) {
	p.printDescription(s.Description)
	opts := p.opts()
	if s.Validator != nil {
		opts = append(opts, survey.WithValidator(s.Validator))
	}

	q := &survey.MultiSelect{Message: formatLabel(s.Label), Help: s.Help, Options: s.Options}
	if len(s.Default) > 0 {
		q.Default = s.Default
	}

	var result []string
	err := survey.AskOne(q, &result, opts...)
	return result, p.handleError(err)
}

func (p *Prompt) opts() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithStdio(p.stdin, p.stdout, p.stderr),
		survey.WithShowCursor(true),
	}
}

func (p *Prompt) printDescription(desc string) {
	if desc != "" {
		p.Printf("\n%s\n", desc)
	}
}

func (p *Prompt) handleError(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, terminal.InterruptErr):
		p.Printf("\n%s\n", color.YellowString("Cancelled."))
		return false
	default:
		_, _ = fmt.Fprintf(p.stderr, "%s\n", err)
		return false
	}
}

func formatLabel(label string) string {
	if label == "" {
		return ""
	}
	return label + ":"
}
