package tree

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type Options struct {
	Component model.ComponentKey
}

type dependencies interface {
	Telemetry() telemetry.Telemetry
	Stdout() io.Writer
	Index() *project.Index
	Resolver() *resolver.Resolver
}

// Run prints the explicit dependency tree of the component.
func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.dependency.tree")
	span.SetAttributes(attribute.String("component", o.Component.String()))
	defer span.End(&err)

	if !d.Index().Exists(ctx, o.Component) {
		return errors.Errorf(`%s not found`, o.Component.Desc())
	}

	root, err := d.Resolver().Tree(ctx, o.Component)
	if err != nil {
		return err
	}
	return resolver.PrintTree(d.Stdout(), root)
}
