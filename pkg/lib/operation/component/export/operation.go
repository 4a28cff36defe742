package export

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/export"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type Options struct {
	Component            model.ComponentKey
	IncludeGlobalFolders bool
	ListFiles            bool // print archived files to stdout
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Stdout() io.Writer
	Exporter() *export.Exporter
}

// Run exports the component with its explicit dependency closure to "export/<name>.zip".
func Run(ctx context.Context, o Options, d dependencies) (result *export.Result, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.component.export")
	span.SetAttributes(attribute.String("component", o.Component.String()))
	defer span.End(&err)

	result, err = d.Exporter().Export(ctx, o.Component, export.Options{IncludeGlobalFolders: o.IncludeGlobalFolders})
	if err != nil {
		return nil, err
	}

	for _, item := range result.Closure.Items() {
		d.Logger().Debugf(ctx, `Exported dependency "%s".`, item)
	}
	if o.ListFiles {
		for _, file := range result.Files {
			fmt.Fprintln(d.Stdout(), file)
		}
	}
	return result, nil
}
