package templatedef

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/heat"
)

// NodeGroupAttrAddresses is the node group attribute address outputs are
// bound to.
const NodeGroupAttrAddresses = "node_addresses"

// AddressOutput chooses the stack output holding a role's addresses.
type AddressOutput interface {
	OutputKey(floatingIPEnabled bool) string
}

// ServerAddressOutput selects between a public and a private address output.
type ServerAddressOutput struct {
	Public  string
	Private string
}

// OutputKey returns Public when floating IPs are enabled, Private otherwise.
func (o ServerAddressOutput) OutputKey(floatingIPEnabled bool) string {
	if floatingIPEnabled {
		return o.Public
	}
	return o.Private
}

// Address outputs of the master and worker roles.
var (
	MasterAddresses = ServerAddressOutput{Public: "kube_masters", Private: "kube_masters_private"}
	NodeAddresses   = ServerAddressOutput{Public: "kube_minions", Private: "kube_minions_private"}
)

// OutputBinding ties a stack output to a node group attribute. It is fixed
// once resolved.
type OutputBinding struct {
	role          string
	outputKey     string
	nodeGroupAttr string
	nodeGroupUUID string
}

// ResolveOutputBinding resolves the output bound to ng for the given floating
// IP setting.
func ResolveOutputBinding(mapping AddressOutput, role string, ng *cluster.NodeGroup, floatingIPEnabled bool) OutputBinding {
	return OutputBinding{
		role:          role,
		outputKey:     mapping.OutputKey(floatingIPEnabled),
		nodeGroupAttr: NodeGroupAttrAddresses,
		nodeGroupUUID: ng.UUID,
	}
}

func (b OutputBinding) Role() string          { return b.role }
func (b OutputBinding) OutputKey() string     { return b.outputKey }
func (b OutputBinding) NodeGroupAttr() string { return b.nodeGroupAttr }
func (b OutputBinding) NodeGroupUUID() string { return b.nodeGroupUUID }

// Apply copies the bound output from stack onto the node group of c it
// refers to. It reports whether the stack had a value for the output.
func (b OutputBinding) Apply(stack heat.Stack, c *cluster.Cluster) (bool, error) {
	ng := c.NodeGroupByUUID(b.nodeGroupUUID)
	if ng == nil {
		return false, fmt.Errorf("node group %s not found", b.nodeGroupUUID)
	}
	return heat.AttachOutput(stack, b.outputKey, ng)
}

// UpdateOutputs binds the worker and master address outputs of stack onto
// the default node groups of c and returns the bindings used.
func (d *Definition) UpdateOutputs(ctx context.Context, stack heat.Stack, tmpl *cluster.Template, c *cluster.Cluster) ([]OutputBinding, error) {
	if tmpl == nil || c == nil {
		return nil, errors.New("cluster template and cluster are required")
	}

	worker := c.DefaultWorker()
	master := c.DefaultMaster()
	if worker == nil || master == nil {
		return nil, fmt.Errorf("cluster %s is missing a default master or worker node group", c.UUID)
	}
	if master.UUID == "" || worker.UUID == "" {
		return nil, fmt.Errorf("cluster %s has a default node group without a UUID", c.UUID)
	}
	if master.UUID == worker.UUID {
		return nil, fmt.Errorf("cluster %s master and worker node groups share UUID %s", c.UUID, master.UUID)
	}

	log := logr.FromContextOrDiscard(ctx).WithValues("cluster", c.UUID)

	bindings := []OutputBinding{
		ResolveOutputBinding(NodeAddresses, cluster.RoleWorker, worker, tmpl.FloatingIPEnabled),
		ResolveOutputBinding(MasterAddresses, cluster.RoleMaster, master, tmpl.FloatingIPEnabled),
	}

	for _, binding := range bindings {
		log.V(1).Info("Using heat output", "role", binding.Role(), "output", binding.OutputKey())

		attached, err := binding.Apply(stack, c)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s addresses: %w", binding.Role(), err)
		}
		if attached {
			outputBindingsTotal.WithLabelValues(binding.Role(), binding.OutputKey()).Inc()
		}
	}

	return bindings, nil
}
