package create

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/git"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/scaffold"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
	initOp "github.com/atomic-component-engine/ace/pkg/lib/operation/project/init"
)

type Options struct {
	Type     model.ComponentType
	Name     string // entered by the user, it is normalized to the component id
	Template string // page only, name of the template
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	InitConfig() *project.InitConfig
	Index() *project.Index
	Scaffolder() *scaffold.Scaffolder
}

// Run creates the component from stubs, a page must extend an existing template.
func Run(ctx context.Context, o Options, d dependencies) (key model.ComponentKey, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.component.create")
	span.SetAttributes(attribute.String("component.type", o.Type.String()))
	defer span.End(&err)

	id := model.NormalizeComponentName(o.Name)
	if strings.Trim(id, "_") == "" {
		return key, errors.Errorf(`invalid component name "%s"`, o.Name)
	}
	key = model.ComponentKey{Type: o.Type, Name: id}

	data := scaffold.Data{ComponentName: o.Name, Author: Author(d.InitConfig())}
	if o.Type == model.TypePage {
		templateKey := model.ComponentKey{Type: model.TypeTemplate, Name: o.Template}
		if o.Template == "" || !d.Index().Exists(ctx, templateKey) {
			return key, errors.Errorf(`template "%s" not found`, o.Template)
		}
		data.Template = o.Template
	}

	if _, err := d.Scaffolder().CreateComponent(ctx, key, data); err != nil {
		return key, err
	}

	d.Logger().Infof(ctx, `Created %s.`, key.Desc())
	return key, nil
}

// Author returns the author for file headers, it is empty, if the feature is disabled in the project.
func Author(cfg *project.InitConfig) string {
	if cfg == nil || !cfg.Feature(initOp.FeatureNameInHeader) {
		return ""
	}
	return git.Author{Name: cfg.Name, Email: cfg.Email}.String()
}
