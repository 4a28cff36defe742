// Package dependencies provides dependencies for command line interface.
//
// # Dependency Containers
//
// Following dependencies containers are implemented:
//   - [BaseScope] interface provides basic CLI dependencies, the filesystem is rooted in the working dir.
//   - [ProjectScope] interface provides dependencies for commands running in an ACE project,
//     the filesystem is rooted in the project dir, the nearest dir with the "ace_config.json" file.
//
// These containers can be obtained from the [Provider], it can be created by [NewProvider].
// Containers are created per command invocation, there is no global state.
package dependencies

import (
	"context"
	"io"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/env"
	"github.com/atomic-component-engine/ace/internal/pkg/export"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/options"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/scaffold"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

var ErrProjectNotFound = errors.Errorf(`project not found, missing file "%s"`, project.ConfigFile)

// FsFactory creates filesystem rooted in the absolute, slash separated, dir.
type FsFactory func(ctx context.Context, dir string) (filesystem.Fs, error)

// BaseScope interface provides basic CLI dependencies.
type BaseScope interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Stdout() io.Writer
	Stderr() io.Writer
	Envs() *env.Map
	Options() *options.Options
	Prompt() prompt.Prompt
	Fs() filesystem.Fs
	RootFs() filesystem.Fs
	HomeDir() string
}

// ProjectScope interface provides dependencies of a command running in a project.
type ProjectScope interface {
	BaseScope
	InitConfig() *project.InitConfig
	Layout() project.Layout
	Index() *project.Index
	Resolver() *resolver.Resolver
	Exporter() *export.Exporter
	Scaffolder() *scaffold.Scaffolder
}

// Provider creates containers lazily, the project scope is created only if a command requires it.
type Provider interface {
	BaseScope() BaseScope
	ProjectScope(ctx context.Context) (ProjectScope, error)
}
