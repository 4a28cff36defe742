package nop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
)

func TestNopPrompt(t *testing.T) {
	t.Parallel()
	var p prompt.Prompt = New()

	assert.False(t, p.IsInteractive())
	assert.True(t, p.Confirm(&prompt.Confirm{Label: "Continue?", Default: true}))
	assert.False(t, p.Confirm(&prompt.Confirm{Label: "Continue?"}))

	v, ok := p.Ask(&prompt.Question{Label: "Name", Default: "foo"})
	assert.True(t, ok)
	assert.Equal(t, "foo", v)
	_, ok = p.Ask(&prompt.Question{Label: "Name"})
	assert.False(t, ok)

	v, ok = p.Select(&prompt.Select{Label: "Template", Options: []string{"a", "b"}, Default: "b", UseDefault: true})
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = p.Select(&prompt.Select{Label: "Template", Options: []string{"a", "b"}})
	assert.False(t, ok)

	values, ok := p.MultiSelect(&prompt.MultiSelect{Label: "Deps", Options: []string{"a", "b"}})
	assert.False(t, ok)
	assert.Empty(t, values)
}
