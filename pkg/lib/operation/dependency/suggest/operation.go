package suggest

import (
	"context"
	"fmt"
	"io"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/prompt"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

type Options struct {
	Component model.ComponentKey
	All       bool // add all suggestions without asking
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Stdout() io.Writer
	Prompt() prompt.Prompt
	Index() *project.Index
	Resolver() *resolver.Resolver
}

// Run suggests implied dependencies, which are not declared in the ace.json, as explicit dependencies.
// Suggestions are printed, selected items are added. Without a terminal, items are added only with the All option.
func Run(ctx context.Context, o Options, d dependencies) (added []model.DependencyItem, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.dependency.suggest")
	span.SetAttributes(attribute.String("component", o.Component.String()))
	defer span.End(&err)

	if !d.Index().Exists(ctx, o.Component) {
		return nil, errors.Errorf(`%s not found`, o.Component.Desc())
	}

	undeclared, err := d.Resolver().Undeclared(ctx, o.Component)
	if err != nil {
		return nil, err
	}
	items := undeclared.Items()
	if len(items) == 0 {
		d.Logger().Infof(ctx, `All dependencies of %s are declared.`, o.Component.Desc())
		return nil, nil
	}

	fmt.Fprintf(d.Stdout(), "Undeclared dependencies of %s:\n", o.Component.Desc())
	for _, item := range items {
		fmt.Fprintf(d.Stdout(), "  %s\n", item)
	}

	selected, err := selectItems(o, d.Prompt(), items)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		d.Logger().Info(ctx, `Use the "--all" flag to add them.`)
		return nil, nil
	}

	record := d.Resolver().Record(o.Component)
	for _, item := range selected {
		ok, err := d.Resolver().Store().AddDependency(ctx, record, item.Kind, item.Ref)
		if err != nil {
			return added, err
		}
		if ok {
			added = append(added, item)
		}
	}
	return added, nil
}

// selectItems returns nil, if nothing should be added.
func selectItems(o Options, p prompt.Prompt, items []model.DependencyItem) ([]model.DependencyItem, error) {
	if o.All {
		return items, nil
	}
	if !p.IsInteractive() {
		return nil, nil
	}

	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.String())
	}

	values, ok := p.MultiSelect(&prompt.MultiSelect{
		Label:       "Dependencies to add",
		Description: "Select dependencies to add to the ace.json.",
		Options:     labels,
		Default:     labels,
		Validator:   prompt.AtLeastOneRequired,
	})
	if !ok {
		return nil, errors.New("no dependency selected")
	}

	var out []model.DependencyItem
	for _, item := range items {
		if slices.Contains(values, item.String()) {
			out = append(out, item)
		}
	}
	return out, nil
}
