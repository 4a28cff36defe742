package list

import (
	"context"
	"fmt"
	"io"

	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type Options struct {
	Type model.ComponentType // optional, all types if empty
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Stdout() io.Writer
	Index() *project.Index
}

// Run prints references of components, one per line.
func Run(ctx context.Context, o Options, d dependencies) (keys []model.ComponentKey, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.component.list")
	defer span.End(&err)

	if o.Type == "" {
		keys, err = d.Index().ListAll(ctx)
	} else {
		keys, err = d.Index().ListByType(ctx, o.Type)
	}
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		d.Logger().Info(ctx, "No components found.")
		return keys, nil
	}

	for _, key := range keys {
		fmt.Fprintln(d.Stdout(), key.String())
	}
	return keys, nil
}
