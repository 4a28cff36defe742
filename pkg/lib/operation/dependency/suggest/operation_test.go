package suggest

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt/nop"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type testDeps struct {
	logger   log.DebugLogger
	stdout   *bytes.Buffer
	prompt   prompt.Prompt
	fs       filesystem.Fs
	layout   project.Layout
	resolver *resolver.Resolver
}

func (d *testDeps) Logger() log.Logger             { return d.logger }
func (d *testDeps) Telemetry() telemetry.Telemetry { return telemetry.NewNopTelemetry() }
func (d *testDeps) Stdout() io.Writer              { return d.stdout }
func (d *testDeps) Prompt() prompt.Prompt          { return d.prompt }
func (d *testDeps) Index() *project.Index          { return project.NewIndex(d.fs, d.layout) }
func (d *testDeps) Resolver() *resolver.Resolver   { return d.resolver }

// selectPrompt answers each multi select by the fixed values.
type selectPrompt struct {
	*nop.Prompt
	values []string
	asked  *prompt.MultiSelect
}

func (p *selectPrompt) IsInteractive() bool {
	return true
}

func (p *selectPrompt) MultiSelect(s *prompt.MultiSelect) ([]string, bool) {
	p.asked = s
	return p.values, len(p.values) > 0
}

func newTestDeps(t *testing.T, p prompt.Prompt) *testDeps {
	t.Helper()
	ctx := context.Background()
	logger := log.NewDebugLogger()
	fs := aferofs.NewMemoryFs()
	layout := project.NewLayout("")
	files := map[string]string{
		"src/atoms/icon/icon.jade":         "span\n",
		"src/global-js/menu.js":            "",
		"src/molecules/button/button.jade": "button\n  include ../../atoms/icon/icon.jade\n",
		"src/molecules/button/button.js":   "define(['jquery', 'menu'], function ($, menu) {});\n",
	}
	for path, content := range files {
		require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(path, content)))
	}
	return &testDeps{logger: logger, stdout: &bytes.Buffer{}, prompt: p, fs: fs, layout: layout, resolver: resolver.New(fs, logger, layout)}
}

var button = model.ComponentKey{Type: model.TypeMolecule, Name: "button"}

func TestRun_NonInteractive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := newTestDeps(t, nop.New())

	added, err := Run(ctx, Options{Component: button}, d)
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Equal(t, "Undeclared dependencies of molecule \"button\":\n  component: atoms/icon\n  js: menu.js\n", d.stdout.String())
	assert.Contains(t, d.logger.InfoMessages(), `Use the "--all" flag to add them.`)

	explicit, err := d.resolver.Explicit(ctx, button)
	require.NoError(t, err)
	assert.True(t, explicit.IsEmpty())
}

func TestRun_All(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := newTestDeps(t, nop.New())

	added, err := Run(ctx, Options{Component: button, All: true}, d)
	require.NoError(t, err)
	assert.Len(t, added, 2)

	explicit, err := d.resolver.Explicit(ctx, button)
	require.NoError(t, err)
	assert.Equal(t, []string{"atoms/icon"}, explicit.Components)
	assert.Equal(t, []string{"menu.js"}, explicit.JS)

	// Nothing more to suggest
	d.logger.Truncate()
	added, err = Run(ctx, Options{Component: button, All: true}, d)
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Contains(t, d.logger.InfoMessages(), `All dependencies of molecule "button" are declared.`)
}

func TestRun_Interactive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := &selectPrompt{Prompt: nop.New(), values: []string{"js: menu.js"}}
	d := newTestDeps(t, p)

	added, err := Run(ctx, Options{Component: button}, d)
	require.NoError(t, err)
	assert.Equal(t, []model.DependencyItem{{Kind: model.KindJS, Ref: "menu.js"}}, added)

	// Empty selection is rejected by the prompt
	require.NotNil(t, p.asked)
	assert.Equal(t, []string{"component: atoms/icon", "js: menu.js"}, p.asked.Options)
	require.NotNil(t, p.asked.Validator)
	require.Error(t, p.asked.Validator([]core.OptionAnswer{}))
	require.NoError(t, p.asked.Validator([]core.OptionAnswer{{Index: 1, Value: "js: menu.js"}}))

	explicit, err := d.resolver.Explicit(ctx, button)
	require.NoError(t, err)
	assert.Empty(t, explicit.Components)
	assert.Equal(t, []string{"menu.js"}, explicit.JS)
}

func TestRun_NothingSelected(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t, &selectPrompt{Prompt: nop.New()})

	_, err := Run(context.Background(), Options{Component: button}, d)
	require.Error(t, err)
	assert.Equal(t, "no dependency selected", err.Error())
}
