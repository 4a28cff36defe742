package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
)

func newRecord(ref string) *component.Record {
	key, err := model.ParseComponentRef(ref)
	if err != nil {
		panic(err)
	}
	return component.New(project.NewLayout(""), key)
}

func TestGetExplicit_AfterEnsureConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger())
	record := newRecord("molecules/button")
	require.NoError(t, fs.Mkdir(ctx, record.Dir()))

	require.NoError(t, record.EnsureConfig(ctx, fs, log.NewNopLogger()))
	closure, err := s.GetExplicit(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, model.Closure{Components: []string{}, JS: []string{}, Sass: []string{}}, closure)
}

func TestGetExplicit_CreatesMissingConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger())
	record := newRecord("atoms/icon")

	closure, err := s.GetExplicit(ctx, record)
	require.NoError(t, err)
	assert.True(t, closure.IsEmpty())
	assert.True(t, fs.IsFile(ctx, record.ConfigFile()))
}

func TestAddDependency_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	logger := log.NewDebugLogger()
	s := New(fs, logger)
	record := newRecord("molecules/card")

	added, err := s.AddDependency(ctx, record, model.KindComponent, "atoms/button")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddDependency(ctx, record, model.KindComponent, "atoms/button")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Contains(t, logger.InfoMessages(), `Dependency "atoms/button" is already present in "src/molecules/card/ace.json".`)

	file, err := fs.ReadFile(ctx, filesystem.NewFileDef(record.ConfigFile()))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(file.Content, `"atoms/button"`))

	closure, err := s.GetExplicit(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, []string{"atoms/button"}, closure.Components)
}

func TestAddDependency_Kinds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger())
	record := newRecord("organisms/header")

	_, err := s.AddDependency(ctx, record, model.KindJS, "offcanvasMenu.js")
	require.NoError(t, err)
	_, err = s.AddDependency(ctx, record, model.KindSass, "mixins")
	require.NoError(t, err)
	_, err = s.AddDependency(ctx, record, model.KindComponent, "Molecules/menu")
	require.NoError(t, err)

	closure, err := s.GetExplicit(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, model.Closure{Components: []string{"molecules/menu"}, JS: []string{"offcanvasMenu.js"}, Sass: []string{"mixins"}}, closure)
}

func TestAddDependency_Invalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger())
	record := newRecord("atoms/icon")

	_, err := s.AddDependency(ctx, record, model.KindComponent, "atoms/icon")
	require.Error(t, err)
	assert.Equal(t, `component "atoms/icon" cannot depend on itself`, err.Error())

	_, err = s.AddDependency(ctx, record, model.KindComponent, "icon")
	require.Error(t, err)

	_, err = s.AddDependency(ctx, record, model.KindJS, "/etc/passwd")
	require.Error(t, err)

	_, err = s.AddDependency(ctx, record, model.KindSass, "../../export")
	require.Error(t, err)
	assert.Equal(t, `sass dependency "../../export" must not leave the global sass directory`, err.Error())

	_, err = s.AddDependency(ctx, record, model.KindJS, "vendor/../..")
	require.Error(t, err)

	// Stays inside the global dir
	added, err := s.AddDependency(ctx, record, model.KindJS, "vendor/../menu")
	require.NoError(t, err)
	assert.True(t, added)
	require.NoError(t, fs.Remove(ctx, record.ConfigFile()))

	assert.False(t, fs.Exists(ctx, record.ConfigFile()))
}

func TestRemoveDependency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger())
	record := newRecord("atoms/icon")

	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(record.ConfigFile(), `{"name":"icon","dependencies":{"js":["a.js","b.js","a.js"]}}`)))
	removed, err := s.RemoveDependency(ctx, record, model.KindJS, "a.js")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveDependency(ctx, record, model.KindJS, "a.js")
	require.NoError(t, err)
	assert.False(t, removed)

	closure, err := s.GetExplicit(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.js"}, closure.JS)
}
