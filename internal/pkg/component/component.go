// Package component locates files of one component and reads/writes its ace.json config.
package component

import (
	"context"

	"github.com/fatih/color"

	"github.com/atomic-component-engine/ace/internal/pkg/encoding/json"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
)

const (
	ConfigFile = "ace.json"
	MarkupExt  = ".jade"
)

// Record represents one component on the disk.
type Record struct {
	key        model.ComponentKey
	dir        string
	configFile string
	markupFile string
	scriptFile string
	styleFile  string
}

func New(layout project.Layout, key model.ComponentKey) *Record {
	dir := layout.ComponentDir(key)
	return &Record{
		key:        key,
		dir:        dir,
		configFile: filesystem.Join(dir, ConfigFile),
		markupFile: filesystem.Join(dir, key.Name+MarkupExt),
		scriptFile: filesystem.Join(dir, key.Name+model.JSExt),
		styleFile:  filesystem.Join(dir, key.Name+model.SassExt),
	}
}

func (r *Record) Key() model.ComponentKey {
	return r.key
}

func (r *Record) Dir() string {
	return r.dir
}

func (r *Record) ConfigFile() string {
	return r.configFile
}

func (r *Record) MarkupFile() string {
	return r.markupFile
}

func (r *Record) ScriptFile() string {
	return r.scriptFile
}

func (r *Record) StyleFile() string {
	return r.styleFile
}

// Exists returns true if the component directory exists.
func (r *Record) Exists(ctx context.Context, fs filesystem.Fs) bool {
	return fs.IsDir(ctx, r.dir)
}

// EnsureConfig creates ace.json with empty dependency lists, if it doesn't exist.
func (r *Record) EnsureConfig(ctx context.Context, fs filesystem.Fs, logger log.Logger) error {
	if fs.Exists(ctx, r.configFile) {
		return nil
	}

	if err := r.SaveConfig(ctx, fs, model.NewDependencyConfig(r.key.Name, "")); err != nil {
		return err
	}

	logger.Infof(ctx, "%s %s", color.GreenString("create"), r.configFile)
	return nil
}

// LoadConfig reads ace.json, missing lists are replaced by empty lists.
func (r *Record) LoadConfig(ctx context.Context, fs filesystem.Fs) (*model.DependencyConfig, error) {
	file, err := fs.ReadFile(ctx, filesystem.NewFileDef(r.configFile).SetDescription("component config"))
	if err != nil {
		return nil, err
	}

	cfg := &model.DependencyConfig{}
	if err := json.DecodeString(file.Content, cfg); err != nil {
		return nil, model.ConfigParseError{Path: r.configFile, Err: err}
	}
	cfg.Normalize()
	return cfg, nil
}

func (r *Record) SaveConfig(ctx context.Context, fs filesystem.Fs, cfg *model.DependencyConfig) error {
	cfg.Normalize()
	return fs.WriteFile(ctx, filesystem.NewJSONFile(r.configFile, cfg).SetDescription("component config"))
}
