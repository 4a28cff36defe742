package scaffold

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
)

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Render("component/markup.jade.tmpl", Data{ComponentName: "Big Button", ID: "big_button", Type: "molecule", Author: "John <john@example.com>"})
	require.NoError(t, err)
	assert.Equal(t, "//- Big Button molecule\n//- @author John <john@example.com>\n\n.big_button\n", out)

	out, err = Render("component/markup.jade.tmpl", Data{ComponentName: "Big Button", ID: "big_button", Type: "molecule"})
	require.NoError(t, err)
	assert.Equal(t, "//- Big Button molecule\n\n.big_button\n", out)

	_, err = Render("component/missing.tmpl", Data{})
	require.Error(t, err)
	assert.Equal(t, `stub "component/missing.tmpl" not found`, err.Error())
}

func TestScaffolder_CreateComponent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	logger := log.NewDebugLogger()
	s := New(fs, logger, project.NewLayout(""))

	key := model.ComponentKey{Type: model.TypeMolecule, Name: "button"}
	created, err := s.CreateComponent(ctx, key, Data{ComponentName: "Button", Author: "John"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"src/molecules/button/_demo_button.jade",
		"src/molecules/button/_demo_button.scss",
		"src/molecules/button/ace.json",
		"src/molecules/button/button.jade",
		"src/molecules/button/button.js",
		"src/molecules/button/button.scss",
	}, created)
	assert.Contains(t, logger.InfoMessages(), "src/molecules/button/button.jade")

	// Config
	file, err := fs.ReadFile(ctx, filesystem.NewFileDef("src/molecules/button/ace.json"))
	require.NoError(t, err)
	assert.Contains(t, file.Content, `"author": "John"`)

	// Script header
	file, err = fs.ReadFile(ctx, filesystem.NewFileDef("src/molecules/button/button.js"))
	require.NoError(t, err)
	assert.Contains(t, file.Content, " * @file Defines behaviours for a Button molecule\n * @author John\n */")

	// Second create fails
	_, err = s.CreateComponent(ctx, key, Data{ComponentName: "Button"})
	require.Error(t, err)
	assert.Equal(t, `molecule "button" already exists in "src/molecules/button"`, err.Error())
}

func TestScaffolder_CreateTemplateAndPage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger(), project.NewLayout(""))

	created, err := s.CreateComponent(ctx, model.ComponentKey{Type: model.TypeTemplate, Name: "default"}, Data{ComponentName: "Default"})
	require.NoError(t, err)
	assert.Len(t, created, 4)

	created, err = s.CreateComponent(ctx, model.ComponentKey{Type: model.TypePage, Name: "home"}, Data{ComponentName: "Home", Template: "default"})
	require.NoError(t, err)
	assert.Len(t, created, 4)

	file, err := fs.ReadFile(ctx, filesystem.NewFileDef("src/pages/home/home.jade"))
	require.NoError(t, err)
	assert.Equal(t, "//- Home page\nextends ../../templates/default/default\n\nblock content\n  .home\n", file.Content)
}

func TestScaffolder_InitProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger(), project.NewLayout("mixins"))

	// Existing file is kept
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile("README.md", "my readme")))

	created, err := s.InitProject(ctx, Data{PkgName: "my-site"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		".gitignore",
		"src/global-js/componentTasks.js",
		"src/global-js/main.js",
		"src/global-scss/main.scss",
	}, created)

	file, err := fs.ReadFile(ctx, filesystem.NewFileDef("README.md"))
	require.NoError(t, err)
	assert.Equal(t, "my readme", file.Content)

	assert.True(t, fs.IsDir(ctx, "src/atoms"))
	assert.True(t, fs.IsDir(ctx, "src/pages"))
	assert.True(t, fs.IsDir(ctx, "src/global-scss/mixins"))
}

func TestScaffolder_InitProject_WithoutGit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fs := aferofs.NewMemoryFs()
	s := New(fs, log.NewNopLogger(), project.NewLayout(""))

	created, err := s.InitProject(ctx, Data{PkgName: "my-site"}, false)
	require.NoError(t, err)
	assert.NotContains(t, created, ".gitignore")
	assert.Contains(t, created, "README.md")
	assert.False(t, fs.Exists(ctx, ".gitignore"))
}
