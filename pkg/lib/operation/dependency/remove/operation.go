package remove

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type Options struct {
	Component model.ComponentKey
	Kind      model.DependencyKind
	Refs      []string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Index() *project.Index
	Resolver() *resolver.Resolver
}

// Run removes explicit dependencies from the ace.json of the component, missing refs are skipped.
func Run(ctx context.Context, o Options, d dependencies) (removed int, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.dependency.remove")
	span.SetAttributes(attribute.String("component", o.Component.String()), attribute.String("dependency.kind", o.Kind.String()))
	defer span.End(&err)

	if !d.Index().Exists(ctx, o.Component) {
		return 0, errors.Errorf(`%s not found`, o.Component.Desc())
	}
	if len(o.Refs) == 0 {
		return 0, errors.New("at least one dependency is required")
	}

	record := d.Resolver().Record(o.Component)
	for _, ref := range o.Refs {
		// Component refs are stored in the canonical form
		if o.Kind == model.KindComponent {
			if key, err := model.ParseComponentRef(ref); err == nil {
				ref = key.String()
			}
		}

		ok, err := d.Resolver().Store().RemoveDependency(ctx, record, o.Kind, ref)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}
