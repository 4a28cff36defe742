package init

import (
	"context"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/scaffold"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	FeatureGit          = "git"
	FeatureNameInHeader = "nameInHeader"
)

type Options struct {
	Name         string
	Email        string
	PkgName      string
	MixinsDir    string
	WithGit      bool
	NameInHeader bool
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Fs() filesystem.Fs
}

// Run creates "ace_config.json" and the project skeleton in the working dir.
func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.project.init")
	defer span.End(&err)

	logger := d.Logger()
	fs := d.Fs()

	if fs.Exists(ctx, project.ConfigFile) {
		return errors.Errorf(`the directory is already an ACE project, "%s" found`, project.ConfigFile)
	}

	cfg := &project.InitConfig{
		Name:                 o.Name,
		Email:                o.Email,
		PkgName:              o.PkgName,
		IdentifiedComponents: []string{},
		MixinsDir:            o.MixinsDir,
		Features: map[string]any{
			FeatureGit:          o.WithGit,
			FeatureNameInHeader: o.NameInHeader,
		},
	}
	if err := project.SaveInitConfig(ctx, fs, cfg); err != nil {
		return errors.PrefixError(err, "cannot create project config")
	}
	logger.Infof(ctx, `Created "%s".`, project.ConfigFile)

	s := scaffold.New(fs, logger, project.NewLayoutFromConfig(cfg))
	if _, err := s.InitProject(ctx, scaffold.Data{PkgName: o.PkgName}, o.WithGit); err != nil {
		return err
	}

	logger.Info(ctx, "Project initialized.")
	return nil
}
