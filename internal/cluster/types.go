package cluster

// Node group roles.
const (
	RoleMaster = "master"
	RoleWorker = "worker"
)

// Network drivers known to the Kubernetes template.
const (
	NetworkDriverFlannel = "flannel"
	NetworkDriverCalico  = "calico"
)

// Volume drivers known to the Kubernetes template.
const (
	VolumeDriverCinder = "cinder"
	VolumeDriverNone   = "none"
)

// Template is an immutable cluster template record.
type Template struct {
	UUID                string            `json:"uuid,omitempty"`
	Name                string            `json:"name,omitempty"`
	ImageID             string            `json:"image_id"`
	NetworkDriver       string            `json:"network_driver,omitempty"`
	VolumeDriver        string            `json:"volume_driver,omitempty"`
	DockerStorageDriver string            `json:"docker_storage_driver,omitempty"`
	FloatingIPEnabled   bool              `json:"floating_ip_enabled"`
	MasterLBEnabled     bool              `json:"master_lb_enabled,omitempty"`
	FixedNetwork        string            `json:"fixed_network,omitempty"`
	Labels              map[string]string `json:"labels,omitempty"`
}

// Cluster is a provisioning request created from a Template.
type Cluster struct {
	UUID             string            `json:"uuid"`
	Name             string            `json:"name,omitempty"`
	ProjectID        string            `json:"project_id"`
	NodeCount        int               `json:"node_count"`
	MasterCount      int               `json:"master_count,omitempty"`
	DockerVolumeSize *int              `json:"docker_volume_size,omitempty"`
	FixedNetwork     string            `json:"fixed_network,omitempty"`
	CACertRef        string            `json:"ca_cert_ref,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
	NodeGroups       []*NodeGroup      `json:"nodegroups,omitempty"`
}

// NodeGroup is a role-scoped set of nodes within a cluster.
type NodeGroup struct {
	UUID          string   `json:"uuid"`
	Name          string   `json:"name,omitempty"`
	Role          string   `json:"role"`
	IsDefault     bool     `json:"is_default,omitempty"`
	NodeAddresses []string `json:"node_addresses,omitempty"`
}

// DefaultMaster returns the cluster's master node group, preferring the one
// flagged as default. It returns nil when the cluster has none.
func (c *Cluster) DefaultMaster() *NodeGroup {
	return c.defaultNodeGroup(RoleMaster)
}

// DefaultWorker returns the cluster's worker node group, preferring the one
// flagged as default. It returns nil when the cluster has none.
func (c *Cluster) DefaultWorker() *NodeGroup {
	return c.defaultNodeGroup(RoleWorker)
}

func (c *Cluster) defaultNodeGroup(role string) *NodeGroup {
	var first *NodeGroup
	for _, ng := range c.NodeGroups {
		if ng == nil || ng.Role != role {
			continue
		}
		if ng.IsDefault {
			return ng
		}
		if first == nil {
			first = ng
		}
	}
	return first
}

// NodeGroupByUUID returns the node group with the given UUID, or nil. An
// empty UUID never matches.
func (c *Cluster) NodeGroupByUUID(uuid string) *NodeGroup {
	if uuid == "" {
		return nil
	}
	for _, ng := range c.NodeGroups {
		if ng != nil && ng.UUID == uuid {
			return ng
		}
	}
	return nil
}
