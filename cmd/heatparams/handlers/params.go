package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/vexxhost/magnum/internal/templatedef"
)

// ParamsOptions configures the params command.
type ParamsOptions struct {
	Documents
	SeedPath string
	UserName string
	Region   string
	Format   string
}

// Params builds and prints the template parameters for a cluster.
func Params(ctx context.Context, w io.Writer, opts ParamsOptions) error {
	cfg := configFrom(ctx)

	tmpl, c, err := opts.Documents.load()
	if err != nil {
		return err
	}
	seed, err := readSeed(opts.SeedPath)
	if err != nil {
		return err
	}

	def, err := newDefinition(ctx, cfg, opts.Region)
	if err != nil {
		return err
	}

	ctx = templatedef.WithRequestContext(ctx, templatedef.RequestContext{
		UserName:  opts.UserName,
		ProjectID: c.ProjectID,
	})

	params, err := def.Params(ctx, tmpl, c, seed)
	if err != nil {
		return fmt.Errorf("failed to build parameters: %w", err)
	}

	logr.FromContextOrDiscard(ctx).Info("Built parameters", "cluster", c.UUID, "count", len(params))

	rows := make([]row, 0, len(params))
	for _, k := range params.Keys() {
		rows = append(rows, row{Key: k, Value: fmt.Sprint(params[k])})
	}
	return render(w, opts.Format, "Parameters: "+displayName(c.Name, c.UUID), params, rows)
}

func displayName(name, uuid string) string {
	if name != "" {
		return name
	}
	return uuid
}
