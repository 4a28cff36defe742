package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/atomic-component-engine/ace/internal/pkg/env"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd"
)

func main() {
	workingDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	homeDir, _ := os.UserHomeDir()

	fsFactory := func(_ context.Context, dir string) (filesystem.Fs, error) {
		return aferofs.NewLocalFs(filepath.FromSlash(dir))
	}

	root := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, env.FromOs(), fsFactory, filesystem.ToSlash(workingDir), homeDir)
	root.SetContext(context.Background())
	os.Exit(root.Execute())
}
