package create

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/scaffold"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type testDeps struct {
	logger log.DebugLogger
	fs     filesystem.Fs
	cfg    *project.InitConfig
	layout project.Layout
}

func newTestDeps(cfg *project.InitConfig) *testDeps {
	return &testDeps{logger: log.NewDebugLogger(), fs: aferofs.NewMemoryFs(), cfg: cfg, layout: project.NewLayout("")}
}

func (d *testDeps) Logger() log.Logger               { return d.logger }
func (d *testDeps) Telemetry() telemetry.Telemetry   { return telemetry.NewNopTelemetry() }
func (d *testDeps) InitConfig() *project.InitConfig  { return d.cfg }
func (d *testDeps) Index() *project.Index            { return project.NewIndex(d.fs, d.layout) }
func (d *testDeps) Scaffolder() *scaffold.Scaffolder { return scaffold.New(d.fs, d.logger, d.layout) }

func TestRun_Component(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := newTestDeps(&project.InitConfig{Name: "John", Email: "john@example.com", Features: map[string]any{"nameInHeader": true}})

	key, err := Run(ctx, Options{Type: model.TypeMolecule, Name: "Big Button"}, d)
	require.NoError(t, err)
	assert.Equal(t, "molecules/big_button", key.String())
	assert.True(t, d.fs.IsFile(ctx, "src/molecules/big_button/big_button.jade"))
	assert.Contains(t, d.logger.InfoMessages(), `Created molecule "big_button".`)

	file, err := d.fs.ReadFile(ctx, filesystem.NewFileDef("src/molecules/big_button/ace.json"))
	require.NoError(t, err)
	assert.Contains(t, file.Content, `"author": "John <john@example.com>"`)
}

func TestRun_InvalidName(t *testing.T) {
	t.Parallel()
	d := newTestDeps(&project.InitConfig{})

	_, err := Run(context.Background(), Options{Type: model.TypeAtom, Name: "!!!"}, d)
	require.Error(t, err)
	assert.Equal(t, `invalid component name "!!!"`, err.Error())
}

func TestRun_Page(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := newTestDeps(&project.InitConfig{})

	// Template is required
	_, err := Run(ctx, Options{Type: model.TypePage, Name: "home", Template: "default"}, d)
	require.Error(t, err)
	assert.Equal(t, `template "default" not found`, err.Error())

	_, err = Run(ctx, Options{Type: model.TypeTemplate, Name: "default"}, d)
	require.NoError(t, err)
	key, err := Run(ctx, Options{Type: model.TypePage, Name: "home", Template: "default"}, d)
	require.NoError(t, err)
	assert.Equal(t, "pages/home", key.String())
	assert.True(t, d.fs.IsFile(ctx, "src/pages/home/home.jade"))
}

func TestAuthor(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Author(nil))
	assert.Empty(t, Author(&project.InitConfig{Name: "John"}))
	assert.Equal(t, "John", Author(&project.InitConfig{Name: "John", Features: map[string]any{"nameInHeader": "yes"}}))
}
