package list

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	ModeImplied   = Mode("implied")
	ModeExplicit  = Mode("explicit")
	ModeRecursive = Mode("recursive")
)

type Mode string

type Options struct {
	Component model.ComponentKey
	Mode      Mode
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Stdout() io.Writer
	Index() *project.Index
	Resolver() *resolver.Resolver
}

func AllModes() []string {
	return []string{string(ModeExplicit), string(ModeImplied), string(ModeRecursive)}
}

func ParseMode(v string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(v))); m {
	case "":
		return ModeExplicit, nil
	case ModeImplied, ModeExplicit, ModeRecursive:
		return m, nil
	default:
		return "", errors.Errorf(`unknown mode "%s", expected one of: %s`, v, strings.Join(AllModes(), ", "))
	}
}

// Run prints dependencies of the component grouped by kind, for example:
//
//	components:
//	  atoms/icon
//	js:
//	  menu.js
//	sass: -
func Run(ctx context.Context, o Options, d dependencies) (closure model.Closure, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.dependency.list")
	span.SetAttributes(attribute.String("component", o.Component.String()), attribute.String("mode", string(o.Mode)))
	defer span.End(&err)

	if !d.Index().Exists(ctx, o.Component) {
		return closure, errors.Errorf(`%s not found`, o.Component.Desc())
	}

	switch o.Mode {
	case ModeImplied:
		closure, err = d.Resolver().Implied(ctx, o.Component)
	case ModeRecursive:
		closure, err = d.Resolver().ExplicitRecursive(ctx, o.Component)
	default:
		closure, err = d.Resolver().Explicit(ctx, o.Component)
	}
	if err != nil {
		return closure, err
	}

	w := d.Stdout()
	printSection(w, "components", closure.Components)
	printSection(w, "js", closure.JS)
	printSection(w, "sass", closure.Sass)
	return closure, nil
}

func printSection(w io.Writer, name string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "%s: -\n", name)
		return
	}
	fmt.Fprintf(w, "%s:\n", name)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}
