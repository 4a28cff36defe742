// Package scaffold renders embedded stubs of a project, a component and a page.
package scaffold

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	stubExt     = ".tmpl"
	demoPrefix  = "_demo_"
	stubsDir    = "stubs"
	projectStub = "project"
)

//go:embed stubs
var stubs embed.FS

// Data is available in all stubs.
type Data struct {
	ComponentName string // name entered by the user
	ID            string // normalized name, used in paths and CSS classes
	Type          string
	Author        string // empty if the author should not be in file headers
	Template      string // page only
	PkgName       string // project only
}

type Scaffolder struct {
	fs     filesystem.Fs
	logger log.Logger
	layout project.Layout
}

func New(fs filesystem.Fs, logger log.Logger, layout project.Layout) *Scaffolder {
	return &Scaffolder{fs: fs, logger: logger, layout: layout}
}

// ComponentFiles maps stub to the file name in the component dir.
func ComponentFiles(t model.ComponentType, id string) map[string]string {
	switch t {
	case model.TypeTemplate:
		return map[string]string{
			"template/markup.jade.tmpl": id + component.MarkupExt,
			"component/script.js.tmpl":  id + model.JSExt,
			"component/style.scss.tmpl": id + model.SassExt,
		}
	case model.TypePage:
		return map[string]string{
			"page/markup.jade.tmpl": id + component.MarkupExt,
			"page/script.js.tmpl":   id + model.JSExt,
			"page/style.scss.tmpl":  id + model.SassExt,
		}
	default:
		return map[string]string{
			"component/markup.jade.tmpl": id + component.MarkupExt,
			"component/demo.jade.tmpl":   demoPrefix + id + component.MarkupExt,
			"component/script.js.tmpl":   id + model.JSExt,
			"component/style.scss.tmpl":  id + model.SassExt,
			"component/demo.scss.tmpl":   demoPrefix + id + model.SassExt,
		}
	}
}

// CreateComponent renders stubs to the component dir and creates ace.json.
// The component must not exist. Created paths are returned sorted.
func (s *Scaffolder) CreateComponent(ctx context.Context, key model.ComponentKey, data Data) ([]string, error) {
	record := component.New(s.layout, key)
	if record.Exists(ctx, s.fs) {
		return nil, errors.Errorf(`%s already exists in "%s"`, key.Desc(), record.Dir())
	}

	data.ID = key.Name
	data.Type = key.Type.String()

	files := ComponentFiles(key.Type, key.Name)
	created := make([]string, 0, len(files)+1)
	for _, stub := range sortedKeys(files) {
		path := filesystem.Join(record.Dir(), files[stub])
		if err := s.render(ctx, stub, path, data); err != nil {
			return nil, err
		}
		created = append(created, path)
	}

	if err := record.SaveConfig(ctx, s.fs, model.NewDependencyConfig(key.Name, data.Author)); err != nil {
		return nil, err
	}
	s.logCreate(ctx, record.ConfigFile())
	created = append(created, record.ConfigFile())

	return sortStrings(created), nil
}

// InitProject renders the project stubs, existing files are kept.
// The .gitignore is created only if withGit is set.
func (s *Scaffolder) InitProject(ctx context.Context, data Data, withGit bool) ([]string, error) {
	root := filesystem.Join(stubsDir, projectStub)

	var stubPaths []string
	err := fs.WalkDir(stubs, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			stubPaths = append(stubPaths, strings.TrimPrefix(path, stubsDir+"/"))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var created []string
	for _, stub := range stubPaths {
		target := strings.TrimSuffix(strings.TrimPrefix(stub, projectStub+"/"), stubExt)
		if target == "gitignore" {
			if !withGit {
				continue
			}
			target = ".gitignore"
		}

		if s.fs.Exists(ctx, target) {
			s.logger.Infof(ctx, "%s %s", color.YellowString("skip"), target)
			continue
		}
		if err := s.render(ctx, stub, target, data); err != nil {
			return nil, err
		}
		created = append(created, target)
	}

	// Component type dirs
	for _, t := range model.AllComponentTypes() {
		if err := s.fs.Mkdir(ctx, s.layout.TypeDir(t)); err != nil {
			return nil, err
		}
	}
	if err := s.fs.Mkdir(ctx, s.layout.MixinsDir()); err != nil {
		return nil, err
	}

	return sortStrings(created), nil
}

// Render returns the stub rendered with the data.
func Render(stub string, data Data) (string, error) {
	content, err := stubs.ReadFile(filesystem.Join(stubsDir, stub))
	if err != nil {
		return "", errors.Errorf(`stub "%s" not found`, stub)
	}

	tmpl, err := template.New(stub).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", errors.PrefixErrorf(err, `cannot parse stub "%s"`, stub)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", errors.PrefixErrorf(err, `cannot render stub "%s"`, stub)
	}
	return out.String(), nil
}

func (s *Scaffolder) render(ctx context.Context, stub, path string, data Data) error {
	content, err := Render(stub, data)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(ctx, filesystem.NewRawFile(path, content)); err != nil {
		return err
	}
	s.logCreate(ctx, path)
	return nil
}

func (s *Scaffolder) logCreate(ctx context.Context, path string) {
	s.logger.Infof(ctx, "%s %s", color.GreenString("create"), path)
}
