package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keboola/go-utils/pkg/wildcards"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/env"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/options"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/ioutil"
)

func TestCliSubCommands(t *testing.T) {
	t.Parallel()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	// Map commands to names, skip hidden
	var names []string
	for _, cmd := range root.Commands() {
		if !cmd.Hidden {
			names = append(names, cmd.Name())
		}
	}

	// Assert
	assert.Equal(t, []string{
		"init",
		"component",
		"page",
		"dependency",
		"export",
	}, names)
}

func TestCliSubCommandsAndAliases(t *testing.T) {
	t.Parallel()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	// Map commands to names
	cmds := root.Commands()
	names := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		names = append(names, cmd.Name())
	}

	// Assert
	assert.Equal(t, []string{
		"init",
		"component",
		"page",
		"dependency",
		"export",
		"c",
		"ls",
		"p",
		"d",
		"deps",
		"e",
	}, names)
}

func TestCliCmdPersistentFlags(t *testing.T) {
	t.Parallel()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	// Map flags to names
	var names []string
	root.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		names = append(names, flag.Name)
	})

	// Assert
	expected := []string{
		"help",
		"log-file",
		"non-interactive",
		"verbose",
		"working-dir",
	}
	assert.Equal(t, expected, names)
}

func TestCliCmdFlags(t *testing.T) {
	t.Parallel()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	// Map flags to names
	var names []string
	root.Flags().VisitAll(func(flag *pflag.Flag) {
		names = append(names, flag.Name)
	})

	// Assert
	assert.Equal(t, []string{"version"}, names)
}

func TestCliAliasesInUsage(t *testing.T) {
	t.Parallel()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	aliases := root.Annotations["aliases"]
	assert.Contains(t, aliases, "component create  c")
	assert.Contains(t, aliases, "dependency        d, deps")
}

func TestExecute(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand(aferofs.NewMemoryFs())

	// Execute
	root.logger = log.NewNopLogger()
	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), "Available Commands:")
	assert.Contains(t, out.String(), "dependency suggest")
}

func TestExecute_Version(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand(aferofs.NewMemoryFs())

	root.SetArgs([]string{"--version"})
	assert.Equal(t, 0, root.Execute())
	assert.Equal(t, Version+"\n", out.String())
}

func TestExecute_ProjectNotFound(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand(aferofs.NewMemoryFs())

	root.SetArgs([]string{"component", "list"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `Project directory must contain the "ace_config.json" file.`)
	assert.Contains(t, out.String(), `None of this and parent directories is project dir.`)
}

func TestExecute_WorkingDirNotFound(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand(aferofs.NewMemoryFs())

	root.SetArgs([]string{"component", "list", "--working-dir", "/missing"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `Working directory "/missing" not found.`)
}

func TestExecute_InitCreateExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rootFs := aferofs.NewMemoryFs()
	require.NoError(t, rootFs.Mkdir(ctx, "/project"))

	run := func(args ...string) string {
		root, out := newTestRootCommand(rootFs)
		root.SetArgs(append(args, "--non-interactive", "--working-dir", "/project"))
		exitCode := root.Execute()
		require.Equal(t, 0, exitCode, out.String())
		return out.String()
	}

	run("init", "--name", "John", "--email", "john@example.com", "--pkg-name", "my-components")
	assert.True(t, rootFs.IsFile(ctx, "/project/ace_config.json"))

	run("component", "create", "atom", "icon")
	run("component", "create", "molecule", "Big Button")
	assert.True(t, rootFs.IsDir(ctx, "/project/src/atoms/icon"))
	assert.True(t, rootFs.IsDir(ctx, "/project/src/molecules/big_button"))

	run("dependency", "add", "molecules/big_button", "components", "atoms/icon")
	assert.Contains(t, run("dependency", "list", "molecules/big_button"), "atoms/icon")
	components := run("ls")
	assert.Contains(t, components, "atoms/icon\n")
	assert.Contains(t, components, "molecules/big_button\n")

	run("export", "molecules/big_button")
	assert.True(t, rootFs.IsFile(ctx, "/project/export/big_button.zip"))

	// Staged files are removed
	matches, err := rootFs.Glob(ctx, "/project/export/.staging-*")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestTearDown_RemoveLogFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	root.options.Set(options.LogFileOpt, "")
	root.setupLogger(ctx)
	assert.True(t, root.logFile.IsTemp())

	assert.FileExists(t, root.logFile.Path())
	root.tearDown(0, nil)
	assert.NoFileExists(t, root.logFile.Path())
}

func TestTearDown_KeepLogFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())
	logFilePath := filepath.Join(t.TempDir(), "log-file.txt") // nolint: forbidigo

	root.options.Set(options.LogFileOpt, logFilePath)
	root.setupLogger(ctx)
	assert.False(t, root.logFile.IsTemp())
	assert.Equal(t, logFilePath, root.logFile.Path())

	assert.FileExists(t, logFilePath)
	root.tearDown(0, nil)
	assert.FileExists(t, logFilePath)
}

func TestTearDown_KeepTempLogFileOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())

	root.options.Set(options.LogFileOpt, "")
	root.setupLogger(ctx)
	assert.True(t, root.logFile.IsTemp())

	root.tearDown(1, nil)
	assert.FileExists(t, root.logFile.Path())
	assert.NoError(t, os.Remove(root.logFile.Path())) // nolint: forbidigo
}

func TestTearDown_Panic(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())
	root.logger = logger
	exitCode := root.tearDown(0, errors.New("panic error"))
	assert.Equal(t, 1, exitCode)
	expected := `
DEBUG  Unexpected panic: panic error
%A
INFO  
---------------------------------------------------
ACE had a problem and crashed.

To help us diagnose the problem you can send us a crash report.

Please run the command again with the flag "--log-file <path>" to generate a log file.

Then please open an issue and include the log file as an attachment.

We take privacy seriously, and do not perform any automated log file collection.

Thank you kindly!
`
	wildcards.Assert(t, expected, logger.AllMessages())
}

func TestGetLogFileTempFile(t *testing.T) {
	t.Parallel()
	root, _ := newTestRootCommand(aferofs.NewMemoryFs())
	root.options.Set(options.LogFileOpt, "")
	root.setupLogger(context.Background())
	assert.True(t, root.logFile.IsTemp())

	// Linux returns temp dir without last separator, MacOs with last separator.
	tempDir := strings.TrimRight(os.TempDir(), string(os.PathSeparator)) + string(os.PathSeparator) // nolint: forbidigo
	assert.True(t, strings.HasPrefix(root.logFile.Path(), tempDir))
	assert.NoError(t, root.logFile.File().Close())
	assert.NoError(t, os.Remove(root.logFile.Path())) // nolint: forbidigo
}

func newTestRootCommand(rootFs filesystem.Fs) (*RootCommand, *ioutil.AtomicWriter) {
	in := ioutil.NewBufferedReader()
	out := ioutil.NewAtomicWriter()
	fsFactory := func(_ context.Context, dir string) (filesystem.Fs, error) {
		if dir == filesystem.PathSeparator {
			return rootFs, nil
		}
		return aferofs.SubDirFs(rootFs, dir)
	}

	root := NewRootCommand(in, out, out, env.Empty(), fsFactory, filesystem.PathSeparator, "/home/user")
	if root.Context() == nil {
		root.SetContext(context.Background())
	}

	return root, out
}
