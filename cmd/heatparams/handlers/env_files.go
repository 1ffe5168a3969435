package handlers

import (
	"context"
	"io"
	"strconv"
)

// EnvFilesOptions configures the env-files command.
type EnvFilesOptions struct {
	Documents
	Format string
}

// EnvFiles prints the environment overlays for a cluster in order.
func EnvFiles(ctx context.Context, w io.Writer, opts EnvFilesOptions) error {
	tmpl, c, err := opts.Documents.load()
	if err != nil {
		return err
	}

	def, err := newDefinition(ctx, configFrom(ctx), "")
	if err != nil {
		return err
	}

	files := def.EnvFiles(tmpl, c)

	rows := make([]row, len(files))
	for i, f := range files {
		rows[i] = row{Key: strconv.Itoa(i + 1), Value: f}
	}
	return render(w, opts.Format, "Environment files: "+displayName(c.Name, c.UUID), files, rows)
}
