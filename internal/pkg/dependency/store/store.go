// Package store reads and writes explicit dependencies, declared in the ace.json file of a component.
package store

import (
	"context"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type Store struct {
	fs     filesystem.Fs
	logger log.Logger
}

func New(fs filesystem.Fs, logger log.Logger) *Store {
	return &Store{fs: fs, logger: logger.WithComponent("store")}
}

// GetExplicit returns explicit dependencies of the component, one level only.
// The config is created, if it doesn't exist.
func (s *Store) GetExplicit(ctx context.Context, record *component.Record) (model.Closure, error) {
	if err := record.EnsureConfig(ctx, s.fs, s.logger); err != nil {
		return model.Closure{}, err
	}

	cfg, err := record.LoadConfig(ctx, s.fs)
	if err != nil {
		return model.Closure{}, err
	}

	return model.ClosureFromConfig(cfg), nil
}

// AddDependency appends the ref to the list of the kind, if it is not present.
// After the call, the ref is in the persisted list exactly once.
func (s *Store) AddDependency(ctx context.Context, record *component.Record, kind model.DependencyKind, ref string) (added bool, err error) {
	ref, err = s.validateRef(record, kind, ref)
	if err != nil {
		return false, err
	}

	if err := record.EnsureConfig(ctx, s.fs, s.logger); err != nil {
		return false, err
	}

	cfg, err := record.LoadConfig(ctx, s.fs)
	if err != nil {
		return false, err
	}

	logger := s.logger.With(attribute.String("component", record.Key().String()), attribute.String("dependency.kind", kind.String()))
	list := cfg.List(kind)
	if slices.Contains(*list, ref) {
		logger.Infof(ctx, `Dependency "%s" is already present in "%s".`, ref, record.ConfigFile())
		return false, nil
	}

	*list = append(*list, ref)
	if err := record.SaveConfig(ctx, s.fs, cfg); err != nil {
		return false, err
	}

	logger.Infof(ctx, `Added %s dependency "%s" to "%s".`, kind, ref, record.ConfigFile())
	return true, nil
}

// RemoveDependency removes all occurrences of the ref from the list of the kind.
func (s *Store) RemoveDependency(ctx context.Context, record *component.Record, kind model.DependencyKind, ref string) (removed bool, err error) {
	if err := record.EnsureConfig(ctx, s.fs, s.logger); err != nil {
		return false, err
	}

	cfg, err := record.LoadConfig(ctx, s.fs)
	if err != nil {
		return false, err
	}

	list := cfg.List(kind)
	before := len(*list)
	*list = slices.DeleteFunc(*list, func(v string) bool { return v == ref })
	if len(*list) == before {
		s.logger.Infof(ctx, `Dependency "%s" is not present in "%s".`, ref, record.ConfigFile())
		return false, nil
	}

	if err := record.SaveConfig(ctx, s.fs, cfg); err != nil {
		return false, err
	}

	s.logger.Infof(ctx, `Removed %s dependency "%s" from "%s".`, kind, ref, record.ConfigFile())
	return true, nil
}

func (s *Store) validateRef(record *component.Record, kind model.DependencyKind, ref string) (string, error) {
	if ref == "" {
		return "", errors.Errorf(`%s dependency cannot be empty`, kind)
	}

	if kind != model.KindComponent {
		if filesystem.IsAbs(ref) {
			return "", errors.Errorf(`%s dependency "%s" must be a relative path`, kind, ref)
		}
		if clean := filesystem.Join(ref); clean == ".." || strings.HasPrefix(clean, "../") {
			return "", errors.Errorf(`%s dependency "%s" must not leave the global %s directory`, kind, ref, kind)
		}
		return ref, nil
	}

	key, err := model.ParseComponentRef(ref)
	if err != nil {
		return "", err
	}
	if key == record.Key() {
		return "", errors.Errorf(`component "%s" cannot depend on itself`, key)
	}

	// Canonical form, for example "Atoms/icon" -> "atoms/icon"
	return key.String(), nil
}
