// Package prompt defines the user interaction used by commands.
// The interactive implementation is in the "interactive" package, the "nop" package returns defaults.
package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2/core"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type Prompt interface {
	IsInteractive() bool
	Printf(format string, a ...any)
	Confirm(c *Confirm) bool
	Ask(q *Question) (result string, ok bool)
	Select(s *Select) (value string, ok bool)
	MultiSelect(s *MultiSelect) (result []string, ok bool)
}

type Confirm struct {
	Label       string
	Description string
	Help        string
	Default     bool
}

type Question struct {
	Label       string
	Description string
	Help        string
	Default     string
	Validator   func(val any) error
	Hidden      bool
}

type Select struct {
	Label       string
	Description string
	Help        string
	Options     []string
	Default     string
	UseDefault  bool
	Validator   func(val any) error
}

type MultiSelect struct {
	Label       string
	Description string
	Help        string
	Options     []string
	Default     []string
	Validator   func(val any) error
}

func ValueRequired(val any) error {
	str, _ := val.(string)
	if strings.TrimSpace(str) == "" {
		return errors.New("value is required")
	}
	return nil
}

func AtLeastOneRequired(val any) error {
	if v, ok := val.([]core.OptionAnswer); !ok || len(v) == 0 {
		return errors.New("at least one value is required")
	}
	return nil
}
