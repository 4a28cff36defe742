package dependencies

import (
	"context"
	"io"

	"github.com/atomic-component-engine/ace/internal/pkg/env"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/options"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type baseScope struct {
	logger    log.Logger
	telemetry telemetry.Telemetry
	stdout    io.Writer
	stderr    io.Writer
	envs      *env.Map
	options   *options.Options
	prompt    prompt.Prompt
	fs        filesystem.Fs
	rootFs    filesystem.Fs
	fsFactory FsFactory
	homeDir   string
}

type BaseConfig struct {
	Logger    log.Logger
	Telemetry telemetry.Telemetry
	Stdout    io.Writer
	Stderr    io.Writer
	Envs      *env.Map
	Options   *options.Options
	Prompt    prompt.Prompt
	RootFs    filesystem.Fs
	FsFactory FsFactory
	HomeDir   string
}

func newBaseScope(ctx context.Context, cfg BaseConfig) (*baseScope, error) {
	fs, err := cfg.FsFactory(ctx, cfg.Options.WorkingDir())
	if err != nil {
		return nil, err
	}

	tel := cfg.Telemetry
	if tel == nil {
		tel = telemetry.NewNopTelemetry()
	}

	return &baseScope{
		logger:    cfg.Logger,
		telemetry: tel,
		stdout:    cfg.Stdout,
		stderr:    cfg.Stderr,
		envs:      cfg.Envs,
		options:   cfg.Options,
		prompt:    cfg.Prompt,
		fs:        fs,
		rootFs:    cfg.RootFs,
		fsFactory: cfg.FsFactory,
		homeDir:   cfg.HomeDir,
	}, nil
}

func (v *baseScope) Logger() log.Logger {
	return v.logger
}

func (v *baseScope) Telemetry() telemetry.Telemetry {
	return v.telemetry
}

func (v *baseScope) Stdout() io.Writer {
	return v.stdout
}

func (v *baseScope) Stderr() io.Writer {
	return v.stderr
}

func (v *baseScope) Envs() *env.Map {
	return v.envs
}

func (v *baseScope) Options() *options.Options {
	return v.options
}

func (v *baseScope) Prompt() prompt.Prompt {
	return v.prompt
}

// Fs is rooted in the working dir.
func (v *baseScope) Fs() filesystem.Fs {
	return v.fs
}

// RootFs is rooted in "/", it is used to read files outside the project, for example the git config.
func (v *baseScope) RootFs() filesystem.Fs {
	return v.rootFs
}

func (v *baseScope) HomeDir() string {
	return v.homeDir
}
