package templatedef

import "github.com/vexxhost/magnum/internal/util/labels"

// passthroughLabel maps a cluster label onto a parameter of the same
// meaning.
type passthroughLabel struct {
	Label string
	Param string
}

// passthroughLabels are copied from the cluster labels when set to a
// non-empty value. Absent labels are never defaulted here.
var passthroughLabels = []passthroughLabel{
	{"coredns_tag", "coredns_tag"},
	{"kube_tag", "kube_tag"},
	{"container_infra_prefix", "container_infra_prefix"},
	{"availability_zone", "availability_zone"},
	{"cgroup_driver", "cgroup_driver"},
	{"calico_tag", "calico_tag"},
	{"calico_cni_tag", "calico_cni_tag"},
	{"calico_kube_controllers_tag", "calico_kube_controllers_tag"},
	{"calico_ipv4pool", "calico_ipv4pool"},
	{"etcd_tag", "etcd_tag"},
	{"flannel_tag", "flannel_tag"},
	{"flannel_cni_tag", "flannel_cni_tag"},
	{"cloud_provider_enabled", "cloud_provider_enabled"},
	{"cloud_provider_tag", "cloud_provider_tag"},
	{"prometheus_tag", "prometheus_tag"},
	{"grafana_tag", "grafana_tag"},
	{"heat_container_agent_tag", "heat_container_agent_tag"},
	{"keystone_auth_enabled", "keystone_auth_enabled"},
	{"k8s_keystone_auth_tag", "k8s_keystone_auth_tag"},
	{"monitoring_enabled", "monitoring_enabled"},
	{"tiller_enabled", "tiller_enabled"},
	{"tiller_tag", "tiller_tag"},
	{"tiller_namespace", "tiller_namespace"},
	{"traefik_ingress_controller_tag", "traefik_ingress_controller_tag"},
	{"node_problem_detector_tag", "node_problem_detector_tag"},
	{"nginx_ingress_controller_tag", "nginx_ingress_controller_tag"},
	{"auto_healing_enabled", "auto_healing_enabled"},
	{"auto_scaling_enabled", "auto_scaling_enabled"},
	{"draino_tag", "draino_tag"},
	{"autoscaler_tag", "autoscaler_tag"},
	{"min_node_count", "min_node_count"},
	{"max_node_count", "max_node_count"},
}

// PassthroughLabels returns the label names copied verbatim into parameters.
func PassthroughLabels() []string {
	out := make([]string, len(passthroughLabels))
	for i, p := range passthroughLabels {
		out[i] = p.Label
	}
	return out
}

func applyPassthrough(b *builder, lbl labels.Labels) {
	for _, p := range passthroughLabels {
		if !lbl.Has(p.Label) {
			continue
		}
		v, _ := lbl.Lookup(p.Label)
		b.set(p.Param, v)
	}
}
