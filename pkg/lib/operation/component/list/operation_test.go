package list

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type testDeps struct {
	logger log.DebugLogger
	stdout *bytes.Buffer
	fs     filesystem.Fs
}

func (d *testDeps) Logger() log.Logger             { return d.logger }
func (d *testDeps) Telemetry() telemetry.Telemetry { return telemetry.NewNopTelemetry() }
func (d *testDeps) Stdout() io.Writer              { return d.stdout }
func (d *testDeps) Index() *project.Index          { return project.NewIndex(d.fs, project.NewLayout("")) }

func TestRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := &testDeps{logger: log.NewDebugLogger(), stdout: &bytes.Buffer{}, fs: aferofs.NewMemoryFs()}

	// Empty project
	keys, err := Run(ctx, Options{}, d)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Contains(t, d.logger.InfoMessages(), "No components found.")

	for _, dir := range []string{"src/atoms/icon", "src/atoms/label", "src/molecules/button", "src/atoms/_draft"} {
		require.NoError(t, d.fs.Mkdir(ctx, dir))
	}

	keys, err = Run(ctx, Options{}, d)
	require.NoError(t, err)
	assert.Len(t, keys, 3)
	assert.Equal(t, "atoms/icon\natoms/label\nmolecules/button\n", d.stdout.String())

	d.stdout.Reset()
	keys, err = Run(ctx, Options{Type: model.TypeMolecule}, d)
	require.NoError(t, err)
	assert.Equal(t, []model.ComponentKey{{Type: model.TypeMolecule, Name: "button"}}, keys)
	assert.Equal(t, "molecules/button\n", d.stdout.String())
}
