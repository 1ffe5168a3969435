package templatedef

import (
	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/util/labels"
)

const envDir = "../../common/templates/environments/"

// Environment overlays included with the stack.
const (
	EnvNoPrivateNetwork    = envDir + "no_private_network.yaml"
	EnvWithPrivateNetwork  = envDir + "with_private_network.yaml"
	EnvNoEtcdVolume        = envDir + "no_etcd_volume.yaml"
	EnvWithEtcdVolume      = envDir + "with_etcd_volume.yaml"
	EnvNoVolume            = envDir + "no_volume.yaml"
	EnvWithVolume          = envDir + "with_volume.yaml"
	EnvNoMasterLB          = envDir + "no_master_lb.yaml"
	EnvWithMasterLB        = envDir + "with_master_lb.yaml"
	EnvEnableFloatingIP    = envDir + "enable_floating_ip.yaml"
	EnvDisableFloatingIP   = envDir + "disable_floating_ip.yaml"
	EnvEnableLBFloatingIP  = envDir + "enable_lb_floating_ip.yaml"
	EnvDisableLBFloatingIP = envDir + "disable_lb_floating_ip.yaml"
)

// EnvFiles returns the environment overlays for creating c from tmpl. The
// order is fixed; later files override earlier ones.
func (d *Definition) EnvFiles(tmpl *cluster.Template, c *cluster.Cluster) []string {
	files := make([]string, 0, 6)
	files = append(files, privateNetworkEnvFile(tmpl, c))
	files = append(files, etcdVolumeEnvFile(tmpl))
	files = append(files, volumeEnvFile(c))
	files = append(files, masterLBEnvFile(tmpl))
	files = append(files, floatingIPEnvFiles(tmpl, c)...)
	return files
}

func privateNetworkEnvFile(tmpl *cluster.Template, c *cluster.Cluster) string {
	if tmpl.FixedNetwork != "" || c.FixedNetwork != "" {
		return EnvNoPrivateNetwork
	}
	return EnvWithPrivateNetwork
}

func etcdVolumeEnvFile(tmpl *cluster.Template) string {
	if labels.New(tmpl.Labels).IntOr(labels.KeyEtcdVolumeSize, 0) < 1 {
		return EnvNoEtcdVolume
	}
	return EnvWithEtcdVolume
}

func volumeEnvFile(c *cluster.Cluster) string {
	if c.DockerVolumeSize == nil {
		return EnvNoVolume
	}
	return EnvWithVolume
}

func masterLBEnvFile(tmpl *cluster.Template) string {
	if tmpl.MasterLBEnabled {
		return EnvWithMasterLB
	}
	return EnvNoMasterLB
}

// floatingIPEnvFiles returns the node floating IP overlay followed by the
// load balancer floating IP overlay. The latter follows the template setting
// unless overridden by the master_lb_floating_ip_enabled label.
func floatingIPEnvFiles(tmpl *cluster.Template, c *cluster.Cluster) []string {
	files := make([]string, 0, 2)
	if tmpl.FloatingIPEnabled {
		files = append(files, EnvEnableFloatingIP)
	} else {
		files = append(files, EnvDisableFloatingIP)
	}

	if labels.New(c.Labels).Bool(labels.KeyMasterLBFloatingIPEnabled, tmpl.FloatingIPEnabled) {
		files = append(files, EnvEnableLBFloatingIP)
	} else {
		files = append(files, EnvDisableLBFloatingIP)
	}
	return files
}
