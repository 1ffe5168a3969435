package handlers

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// OutputsOptions configures the outputs command.
type OutputsOptions struct {
	Documents
	StackPath string
	Format    string
}

// boundOutput is one resolved output binding with the addresses it produced.
type boundOutput struct {
	Role      string   `json:"role"`
	Output    string   `json:"output"`
	NodeGroup string   `json:"nodegroup"`
	Attribute string   `json:"attribute"`
	Addresses []string `json:"addresses"`
}

// Outputs binds the stack outputs to the cluster node groups and prints the
// resulting addresses.
func Outputs(ctx context.Context, w io.Writer, opts OutputsOptions) error {
	tmpl, c, err := opts.Documents.load()
	if err != nil {
		return err
	}
	stack, err := readStack(opts.StackPath)
	if err != nil {
		return err
	}

	def, err := newDefinition(ctx, configFrom(ctx), "")
	if err != nil {
		return err
	}

	bindings, err := def.UpdateOutputs(ctx, stack, tmpl, c)
	if err != nil {
		return fmt.Errorf("failed to bind outputs: %w", err)
	}

	result := make([]boundOutput, 0, len(bindings))
	rows := make([]row, 0, len(bindings))
	for _, b := range bindings {
		var addrs []string
		if ng := c.NodeGroupByUUID(b.NodeGroupUUID()); ng != nil {
			addrs = ng.NodeAddresses
		}
		result = append(result, boundOutput{
			Role:      b.Role(),
			Output:    b.OutputKey(),
			NodeGroup: b.NodeGroupUUID(),
			Attribute: b.NodeGroupAttr(),
			Addresses: addrs,
		})
		rows = append(rows, row{
			Key:   fmt.Sprintf("%s (%s)", b.Role(), b.OutputKey()),
			Value: strings.Join(addrs, ", "),
		})
	}

	return render(w, opts.Format, "Outputs: "+displayName(c.Name, c.UUID), result, rows)
}

