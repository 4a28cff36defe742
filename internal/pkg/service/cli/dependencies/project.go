package dependencies

import (
	"context"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/export"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/scaffold"
)

type projectScope struct {
	BaseScope
	fs         filesystem.Fs
	initConfig *project.InitConfig
	layout     project.Layout
	index      *project.Index
	resolver   *resolver.Resolver
	exporter   *export.Exporter
	scaffolder *scaffold.Scaffolder
}

func newProjectScope(ctx context.Context, base *baseScope) (*projectScope, error) {
	if !base.options.HasProjectDir() {
		return nil, ErrProjectNotFound
	}

	fs, err := base.fsFactory(ctx, base.options.ProjectDir())
	if err != nil {
		return nil, err
	}

	cfg, err := project.LoadInitConfig(ctx, fs)
	if err != nil {
		return nil, err
	}

	layout := project.NewLayoutFromConfig(cfg)
	r := resolver.New(fs, base.logger, layout)
	return &projectScope{
		BaseScope:  base,
		fs:         fs,
		initConfig: cfg,
		layout:     layout,
		index:      project.NewIndex(fs, layout),
		resolver:   r,
		exporter:   export.New(fs, base.logger, base.telemetry, layout, r),
		scaffolder: scaffold.New(fs, base.logger, layout),
	}, nil
}

// Fs is rooted in the project dir.
func (v *projectScope) Fs() filesystem.Fs {
	return v.fs
}

func (v *projectScope) InitConfig() *project.InitConfig {
	return v.initConfig
}

func (v *projectScope) Layout() project.Layout {
	return v.layout
}

func (v *projectScope) Index() *project.Index {
	return v.index
}

func (v *projectScope) Resolver() *resolver.Resolver {
	return v.resolver
}

func (v *projectScope) Exporter() *export.Exporter {
	return v.exporter
}

func (v *projectScope) Scaffolder() *scaffold.Scaffolder {
	return v.scaffolder
}
