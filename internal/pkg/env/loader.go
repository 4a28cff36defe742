package env

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/umisama/go-regexpcache"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// LoadDotEnv loads envs from ".env" files in the dirs, if they exist. Existing envs take precedence.
func LoadDotEnv(ctx context.Context, logger log.Logger, osEnvs *Map, fs filesystem.Fs, dirs []string) *Map {
	envs := FromMap(osEnvs.ToMap()) // copy

	for _, dir := range dirs {
		for _, file := range Files() {
			path := filesystem.Join(dir, file)
			if !fs.IsFile(ctx, path) {
				continue
			}

			fileEnvs, err := LoadEnvFile(ctx, fs, path)
			if err != nil {
				logger.Warn(ctx, err.Error())
				continue
			}
			logger.Infof(ctx, "Loaded env file \"%s\".", path)

			// Merge ENVs, existing keys take precedence.
			envs.Merge(fileEnvs, false)
		}
	}

	return envs
}

func LoadEnvFile(ctx context.Context, fs filesystem.Fs, path string) (*Map, error) {
	file, err := fs.ReadFile(ctx, filesystem.NewFileDef(path).SetDescription("env"))
	if err != nil {
		return nil, err
	}

	envs, err := godotenv.Unmarshal(file.Content)
	if err != nil {
		return nil, errors.Errorf(`cannot parse env file "%s": %w`, path, err)
	}

	// A line without "=" is parsed as a value with an empty key
	for key := range envs {
		if !regexpcache.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`).MatchString(key) {
			return nil, errors.Errorf(`cannot parse env file "%s": invalid key "%s"`, path, key)
		}
	}

	return FromMap(envs), nil
}
