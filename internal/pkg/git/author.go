// nolint: forbidigo
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
)

const ConfigFile = ".gitconfig"

type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	switch {
	case a.Name != "" && a.Email != "":
		return a.Name + " <" + a.Email + ">"
	case a.Name != "":
		return a.Name
	default:
		return a.Email
	}
}

func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// AuthorFromConfig reads "user.name" and "user.email" from the ".gitconfig" file in the home dir.
// The fs is the root filesystem. If a value is missing, the git command is used, if available.
// Errors are logged only, the author is optional metadata.
func AuthorFromConfig(ctx context.Context, logger log.Logger, fs filesystem.Fs, homeDir string) Author {
	author := Author{}
	path := filesystem.Join(filesystem.ToSlash(homeDir), ConfigFile)
	if fs.IsFile(ctx, path) {
		if file, err := fs.ReadFile(ctx, filesystem.NewFileDef(path).SetDescription("git config")); err == nil {
			cfg := ParseConfig(file.Content)
			author.Name = cfg.Get("user.name")
			author.Email = cfg.Get("user.email")
		} else {
			logger.Warn(ctx, err.Error())
		}
	}

	if (author.Name == "" || author.Email == "") && Available() {
		if author.Name == "" {
			author.Name = configValue(ctx, logger, "user.name")
		}
		if author.Email == "" {
			author.Email = configValue(ctx, logger, "user.email")
		}
	}

	return author
}

func configValue(ctx context.Context, logger log.Logger, key string) string {
	var stdOut, stdErr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "config", "--global", "--get", key)
	cmd.Stdout = &stdOut
	cmd.Stderr = &stdErr
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	if err := cmd.Run(); err != nil {
		logger.Debugf(ctx, `Git config "%s" not found: %s`, key, strings.TrimSpace(stdErr.String()))
		return ""
	}
	return strings.TrimSpace(stdOut.String())
}
