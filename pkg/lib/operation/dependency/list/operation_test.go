package list

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type testDeps struct {
	logger   log.DebugLogger
	stdout   *bytes.Buffer
	fs       filesystem.Fs
	layout   project.Layout
	resolver *resolver.Resolver
}

func (d *testDeps) Logger() log.Logger             { return d.logger }
func (d *testDeps) Telemetry() telemetry.Telemetry { return telemetry.NewNopTelemetry() }
func (d *testDeps) Stdout() io.Writer              { return d.stdout }
func (d *testDeps) Index() *project.Index          { return project.NewIndex(d.fs, d.layout) }
func (d *testDeps) Resolver() *resolver.Resolver   { return d.resolver }

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctx := context.Background()
	logger := log.NewDebugLogger()
	fs := aferofs.NewMemoryFs()
	layout := project.NewLayout("")
	files := map[string]string{
		"src/atoms/icon/ace.json":          `{"name":"icon","author":"","dependencies":{"components":[],"js":["icons"],"sass":[]}}`,
		"src/atoms/label/label.jade":       "span\n",
		"src/global-js/icons.js":           "",
		"src/molecules/button/ace.json":    `{"name":"button","author":"","dependencies":{"components":["atoms/icon"],"js":[],"sass":[]}}`,
		"src/molecules/button/button.jade": "button\n  include ../../atoms/label/label.jade\n",
	}
	for path, content := range files {
		require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(path, content)))
	}
	return &testDeps{logger: logger, stdout: &bytes.Buffer{}, fs: fs, layout: layout, resolver: resolver.New(fs, logger, layout)}
}

func TestRun(t *testing.T) {
	t.Parallel()
	key := model.ComponentKey{Type: model.TypeMolecule, Name: "button"}

	cases := []struct {
		mode     Mode
		expected string
	}{
		{ModeExplicit, "components:\n  atoms/icon\njs: -\nsass: -\n"},
		{ModeImplied, "components:\n  atoms/label\njs: -\nsass: -\n"},
		{ModeRecursive, "components:\n  atoms/icon\njs:\n  icons.js\nsass: -\n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			t.Parallel()
			d := newTestDeps(t)
			_, err := Run(context.Background(), Options{Component: key, Mode: tc.mode}, d)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.stdout.String())
		})
	}
}

func TestRun_MissingComponent(t *testing.T) {
	t.Parallel()
	d := newTestDeps(t)
	_, err := Run(context.Background(), Options{Component: model.ComponentKey{Type: model.TypeAtom, Name: "x"}}, d)
	require.Error(t, err)
	assert.Equal(t, `atom "x" not found`, err.Error())
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeExplicit, m)

	m, err = ParseMode("Recursive")
	require.NoError(t, err)
	assert.Equal(t, ModeRecursive, m)

	_, err = ParseMode("all")
	require.Error(t, err)
	assert.Equal(t, `unknown mode "all", expected one of: explicit, implied, recursive`, err.Error())
}
