// Package cmd contains the root command of the ace binary and the tree of sub-commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/env"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/options"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/component"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency"
	exportCmd "github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/export"
	initCmd "github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/init"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/page"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const Version = "dev"

//nolint:gochecknoinits
func init() {
	// Disable commands auto-sorting
	cobra.EnableCommandSorting = false

	// List of all sub-commands in the usage template
	cobra.AddTemplateFunc(`cmds`, func(root *cobra.Command) string {
		var out strings.Builder

		var maxCmdPathLength int
		visitSubCommands(root, func(cmd *cobra.Command) bool {
			cmdPath := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Use+` `)
			if len(cmdPath) > maxCmdPathLength {
				maxCmdPathLength = len(cmdPath)
			}
			return true
		})

		tmpl := fmt.Sprintf("  %%-%ds  %%s", maxCmdPathLength)

		visitSubCommands(root, func(cmd *cobra.Command) bool {
			if !cmd.IsAvailableCommand() && cmd.Name() != `help` {
				return false
			}

			// Separate context by new line
			level := cmdLevel(cmd) - cmdLevel(root)
			if level == 1 && !root.HasParent() {
				out.WriteString("\n")
			}

			cmdPath := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Use+` `)
			out.WriteString(strings.TrimRight(fmt.Sprintf(tmpl, cmdPath, cmd.Short), " "))
			out.WriteString("\n")
			return true
		})
		return strings.Trim(out.String(), "\n")
	})
}

type RootCommand struct {
	*cobra.Command
	stdout     io.Writer
	stderr     io.Writer
	logger     log.Logger
	options    *options.Options
	logFile    *log.File
	workingDir string
	cmdByPath  map[string]*cobra.Command
	aliases    *orderedmap.OrderedMap
}

// NewRootCommand creates parent of all sub-commands.
// The fsFactory creates a filesystem rooted in an absolute slash separated dir, "/" is the root filesystem.
// The workingDir is used, if it is not set by the flag or ENV.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, osEnvs *env.Map, fsFactory dependencies.FsFactory, workingDir, homeDir string) *RootCommand {
	root := &RootCommand{
		stdout:     stdout,
		stderr:     stderr,
		options:    options.New(),
		workingDir: workingDir,
		cmdByPath:  make(map[string]*cobra.Command),
		aliases:    orderedmap.New(),
	}
	root.Command = &cobra.Command{
		Use:               "ace", // name of the binary
		Version:           Version,
		Short:             "Atomic Component Engine, generator of Atomic Design components.",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true, // custom error handling, see printError
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.Help()
		},
	}

	// Setup in/out
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Setup templates
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetUsageTemplate(usageTemplate)

	// Persistent flags for all sub-commands
	root.options.BindPersistentFlags(root.PersistentFlags())
	root.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	p := &dependencies.ProviderRef{}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rootFs, err := fsFactory(ctx, filesystem.PathSeparator)
		if err != nil {
			return err
		}

		// Warnings from the options loading are printed before the log file is known
		verbose, _ := cmd.Flags().GetBool(options.VerboseOpt)
		root.logger = log.NewCliLogger(stdout, stderr, nil, verbose)
		if err := root.options.Load(ctx, root.logger, osEnvs, rootFs, cmd.Flags(), root.workingDir); err != nil {
			return err
		}

		root.setupLogger(ctx)
		root.logger.Debugf(ctx, `Working dir: %s`, root.options.WorkingDir())
		if root.options.HasProjectDir() {
			root.logger.Debugf(ctx, `Project dir: %s`, root.options.ProjectDir())
		}
		root.logger.Debug(ctx, root.options.Dump())

		provider, err := dependencies.NewProvider(ctx, dependencies.BaseConfig{
			Logger:    root.logger,
			Stdout:    stdout,
			Stderr:    stderr,
			Envs:      osEnvs,
			Options:   root.options,
			Prompt:    cli.NewPrompt(stdin, stdout, stderr, root.options.GetBool(options.NonInteractiveOpt)),
			RootFs:    rootFs,
			FsFactory: fsFactory,
			HomeDir:   homeDir,
		})
		if err != nil {
			return err
		}
		p.Set(provider)
		return nil
	}

	// Sub-commands
	root.AddCommand(
		initCmd.Command(p),
		component.Commands(p),
		page.Commands(p),
		dependency.Commands(p),
		exportCmd.Command(p),
	)

	// Get all sub-commands by full path, for example "dependency add"
	visitSubCommands(root.Command, func(cmd *cobra.Command) (goDeep bool) {
		cmdPath := strings.TrimPrefix(cmd.CommandPath(), root.Use+` `)
		root.cmdByPath[cmdPath] = cmd
		return true
	})

	// Aliases
	root.addAlias(`c`, `component create`)
	root.addAlias(`ls`, `component list`)
	root.addAlias(`p`, `page create`)
	root.addAlias(`d`, `dependency`)
	root.addAlias(`deps`, `dependency`)
	root.addAlias(`e`, `export`)

	// Add aliases to usage template
	root.Annotations = map[string]string{`aliases`: root.listAliases()}

	return root
}

// Execute command or sub-command.
func (root *RootCommand) Execute() (exitCode int) {
	defer func() {
		exitCode = root.tearDown(exitCode, recover())
	}()

	if err := root.Command.Execute(); err != nil {
		root.printError(err)
		return 1
	}
	return 0
}

func (root *RootCommand) listAliases() string {
	lines := make([]string, 0, len(root.aliases.Keys()))
	var maxLength int
	for _, cmd := range root.aliases.Keys() {
		aliasesRaw, _ := root.aliases.Get(cmd)
		lines = append(lines, strings.Join(aliasesRaw.([]string), `, `))
		if len(cmd) > maxLength {
			maxLength = len(cmd)
		}
	}

	var out strings.Builder
	tmpl := fmt.Sprintf("  %%-%ds  %%s\n", maxLength)
	for i, cmd := range root.aliases.Keys() {
		out.WriteString(fmt.Sprintf(tmpl, cmd, lines[i]))
	}
	return strings.TrimRight(out.String(), "\n")
}

func (root *RootCommand) addAlias(alias, cmdPath string) {
	target, found := root.cmdByPath[cmdPath]
	if !found {
		panic(errors.Errorf(`cannot create cmd alias "%s": command "%s" not found`, alias, cmdPath))
	}

	use := strings.Split(target.Use, ` `)
	use[0] = alias
	aliasCmd := *target
	aliasCmd.Use = strings.Join(use, ` `)
	aliasCmd.Hidden = true
	root.AddCommand(&aliasCmd)

	var aliases []string
	if aliasesRaw, found := root.aliases.Get(cmdPath); found {
		aliases = aliasesRaw.([]string)
	}
	root.aliases.Set(cmdPath, append(aliases, alias))
}

func (root *RootCommand) printError(errRaw error) {
	ctx := root.context()
	logger := root.getLogger()

	// Convert to MultiError
	var originalErrs errors.MultiError
	if v, ok := errRaw.(errors.MultiError); ok { // nolint: errorlint
		originalErrs = v
	} else {
		originalErrs = errors.NewMultiError()
		originalErrs.Append(errRaw)
	}

	modifiedErrs := errors.NewMultiError()
	for _, err := range originalErrs.WrappedErrors() {
		switch {
		case errors.Is(err, dependencies.ErrProjectNotFound):
			logger.Infof(ctx, `Project directory must contain the "%s" file.`, project.ConfigFile)
			logger.Info(ctx, `Please change working directory to a project directory.`)
			logger.Info(ctx, `Or use the "init" command in a new directory.`)
			modifiedErrs.Append(errors.Wrapf(err, `none of this and parent directories is project dir`))
		default:
			modifiedErrs.Append(err)
		}
	}

	fullErr := errors.PrefixError(modifiedErrs, "Error")
	logger.Debugf(ctx, "Error debug log:\n%s", errors.Format(fullErr, errors.FormatWithStack()))
	root.PrintErrln(errors.Format(fullErr, errors.FormatAsSentences()))
}

func (root *RootCommand) setupLogger(ctx context.Context) {
	var logFileErr error
	logFilePath := root.options.GetString(options.LogFileOpt)
	root.logFile, logFileErr = log.NewLogFile(logFilePath)

	root.logger = log.NewCliLogger(root.stdout, root.stderr, root.logFile, root.options.GetBool(options.VerboseOpt))

	// Warn if user specified log file + it cannot be opened
	if logFileErr != nil && logFilePath != "" {
		root.logger.Warnf(ctx, "Cannot open log file: %s", logFileErr)
	}

	root.logger.Debug(ctx, root.Version)
	root.logger.Debugf(ctx, "Running command %v", os.Args)
	if root.logFile == nil {
		root.logger.Debug(ctx, `Log file: -`)
	} else {
		root.logger.Debug(ctx, `Log file: `+root.logFile.Path())
	}
}

// tearDown does clean-up after command execution.
func (root *RootCommand) tearDown(exitCode int, panicErr any) int {
	ctx := root.context()
	logger := root.getLogger()

	if panicErr != nil {
		logFilePath := ""
		if root.logFile != nil {
			logFilePath = root.logFile.Path()
		}
		exitCode = cli.ProcessPanic(ctx, panicErr, logger, logFilePath)
	}

	// Close log file
	if root.logFile != nil {
		root.logFile.TearDown(ctx, logger, exitCode != 0)
	}
	return exitCode
}

// getLogger returns the logger, it may be uninitialized, if an error occurred before flags were parsed.
func (root *RootCommand) getLogger() log.Logger {
	if root.logger == nil {
		root.logger = log.NewCliLogger(root.stdout, root.stderr, nil, false)
	}
	return root.logger
}

func (root *RootCommand) context() context.Context {
	if ctx := root.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// cmdLevel gets number of command parents.
func cmdLevel(cmd *cobra.Command) int {
	level := 0
	cmd.VisitParents(func(_ *cobra.Command) {
		level++
	})
	return level
}

func visitSubCommands(root *cobra.Command, callback func(cmd *cobra.Command) (goDeep bool)) {
	for _, cmd := range root.Commands() {
		if callback(cmd) {
			visitSubCommands(cmd, callback)
		}
	}
}
