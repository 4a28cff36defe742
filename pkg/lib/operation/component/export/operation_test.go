package export

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/export"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type testDeps struct {
	logger   log.DebugLogger
	stdout   *bytes.Buffer
	exporter *export.Exporter
}

func (d *testDeps) Logger() log.Logger             { return d.logger }
func (d *testDeps) Telemetry() telemetry.Telemetry { return telemetry.NewNopTelemetry() }
func (d *testDeps) Stdout() io.Writer              { return d.stdout }
func (d *testDeps) Exporter() *export.Exporter     { return d.exporter }

func newTestDeps(fs filesystem.Fs) *testDeps {
	logger := log.NewDebugLogger()
	layout := project.NewLayout("")
	r := resolver.New(fs, logger, layout)
	return &testDeps{
		logger:   logger,
		stdout:   &bytes.Buffer{},
		exporter: export.New(fs, logger, telemetry.NewNopTelemetry(), layout, r),
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile("src/atoms/icon/icon.jade", "span.icon\n")))
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile("src/global-js/menu.js", "")))
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(
		"src/molecules/button/ace.json",
		`{"name":"button","author":"","dependencies":{"components":["atoms/icon"],"js":["menu"],"sass":[]}}`,
	)))
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile("src/molecules/button/button.jade", "button\n")))
	d := newTestDeps(fs)
	assert.False(t, fs.Exists(ctx, "src/atoms/icon/ace.json"))

	key := model.ComponentKey{Type: model.TypeMolecule, Name: "button"}
	result, err := Run(ctx, Options{Component: key, ListFiles: true}, d)
	require.NoError(t, err)
	assert.Equal(t, "export/button.zip", result.ZipPath)
	assert.True(t, fs.IsFile(ctx, "export/button.zip"))
	assert.Equal(t, []model.DependencyItem{
		{Kind: model.KindComponent, Ref: "atoms/icon"},
		{Kind: model.KindJS, Ref: "menu.js"},
	}, result.Closure.Items())
	assert.Equal(t, "atoms/icon/ace.json\natoms/icon/icon.jade\nglobal-js/menu.js\nmolecules/button/ace.json\nmolecules/button/button.jade\n", d.stdout.String())

	// The missing config of the dependency is created by the dependency walk, so it is exported too
	assert.True(t, fs.IsFile(ctx, "src/atoms/icon/ace.json"))
	assert.Contains(t, d.logger.DebugMessages(), `Exported dependency "js: menu.js".`)
}

func TestRun_MissingComponent(t *testing.T) {
	t.Parallel()
	d := newTestDeps(aferofs.NewMemoryFs())

	key := model.ComponentKey{Type: model.TypeAtom, Name: "missing"}
	_, err := Run(context.Background(), Options{Component: key}, d)
	require.Error(t, err)
	var exportErr model.ExportError
	assert.True(t, errors.As(err, &exportErr))
	assert.Empty(t, d.stdout.String())
}
