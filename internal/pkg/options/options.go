// Package options loads CLI options from flags, ENV variables and ".env" files.
package options

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomic-component-engine/ace/internal/pkg/env"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	// ProjectConfigFile marks the project root directory.
	ProjectConfigFile = "ace_config.json"

	WorkingDirOpt     = "working-dir"
	LogFileOpt        = "log-file"
	VerboseOpt        = "verbose"
	NonInteractiveOpt = "non-interactive"
)

// Options contains parsed flags and ENV variables.
type Options struct {
	*viper.Viper
	envNaming  *env.NamingConvention
	workingDir string
	projectDir string
}

func New() *Options {
	envNaming := env.NewNamingConvention(env.Prefix)
	return &Options{
		Viper:     viper.NewWithOptions(viper.EnvKeyReplacer(envNaming)),
		envNaming: envNaming,
	}
}

// BindPersistentFlags for all commands.
func (o *Options) BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP(LogFileOpt, "l", "", "path to a log file for details")
	flags.StringP(WorkingDirOpt, "d", "", "use other working directory")
	flags.BoolP(VerboseOpt, "v", false, "print details")
	flags.Bool(NonInteractiveOpt, false, "disable interactive dialogs")
}

// Load all sources of Options, the priority is: flag, OS ENV, ".env" in the working dir, ".env" in the project dir.
// The defaultWorkingDir is used if the working dir is not set by the flag or ENV, it must be absolute.
// The fs is the root filesystem, paths are slash separated.
func (o *Options) Load(ctx context.Context, logger log.Logger, osEnvs *env.Map, fs filesystem.Fs, flags *pflag.FlagSet, defaultWorkingDir string) error {
	// Bind flags
	if err := o.BindPFlags(flags); err != nil {
		return err
	}

	// Working directory
	o.workingDir = defaultWorkingDir
	if v := o.lookup(flags, osEnvs, WorkingDirOpt); v != "" {
		o.workingDir = v
	}
	o.workingDir = strings.TrimRight(filesystem.ToSlash(o.workingDir), filesystem.PathSeparator)
	if o.workingDir == "" {
		o.workingDir = filesystem.PathSeparator
	}
	if !filesystem.IsAbs(o.workingDir) {
		o.workingDir = filesystem.Join(filesystem.ToSlash(defaultWorkingDir), o.workingDir)
	}
	if !fs.IsDir(ctx, o.workingDir) {
		return errors.Errorf(`working directory "%s" not found`, o.workingDir)
	}

	// Project directory
	var warnings []string
	o.projectDir, warnings = FindProjectDir(ctx, fs, o.workingDir)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}

	// Load ".env" files
	dirs := []string{o.workingDir}
	if o.projectDir != "" && o.projectDir != o.workingDir {
		dirs = append(dirs, o.projectDir)
	}
	envs := env.LoadDotEnv(ctx, logger, osEnvs, fs, dirs)

	// Set values from ENVs, if the flag is not set
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			return
		}
		if v, found := envs.Lookup(o.envNaming.FlagToEnv(flag.Name)); found {
			o.Set(flag.Name, v)
		}
	})

	return nil
}

func (o *Options) WorkingDir() string {
	return o.workingDir
}

func (o *Options) ProjectDir() string {
	return o.projectDir
}

func (o *Options) HasProjectDir() bool {
	return o.projectDir != ""
}

// Dump options for debugging.
func (o *Options) Dump() string {
	settings := o.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out strings.Builder
	out.WriteString("Parsed options:")
	for _, k := range keys {
		out.WriteString(fmt.Sprintf(" %s=%v", k, settings[k]))
	}
	return out.String()
}

func (o *Options) lookup(flags *pflag.FlagSet, osEnvs *env.Map, name string) string {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return osEnvs.Get(o.envNaming.FlagToEnv(name))
}

// FindProjectDir returns the working dir or its nearest parent that contains "ace_config.json" file.
func FindProjectDir(ctx context.Context, fs filesystem.Fs, workingDir string) (projectDir string, warnings []string) {
	dir := workingDir
	for {
		path := filesystem.Join(dir, ProjectConfigFile)
		switch {
		case fs.IsFile(ctx, path):
			return dir, warnings
		case fs.IsDir(ctx, path):
			warnings = append(warnings, fmt.Sprintf(`Expected file, but found dir at "%s".`, path))
		}

		// Check parent directory
		parent := filesystem.Dir(dir)
		if parent == dir || parent == filesystem.Loc {
			return "", warnings
		}
		dir = parent
	}
}

// Value of an option with information, whether it was set by a flag, ENV or ".env" file.
type Value[T any] struct {
	Value T
	set   bool
}

func NewValue[T any](v T, set bool) Value[T] {
	return Value[T]{Value: v, set: set}
}

func (v Value[T]) IsSet() bool {
	return v.set
}

func (o *Options) StringValue(key string) Value[string] {
	return NewValue(o.GetString(key), o.IsSet(key))
}

func (o *Options) BoolValue(key string) Value[bool] {
	return NewValue(o.GetBool(key), o.IsSet(key))
}
