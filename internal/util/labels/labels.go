package labels

import (
	"sort"
	"strconv"
	"strings"
)

// Well-known label keys read by the Kubernetes template definition.
const (
	KeyFlannelNetworkCIDR        = "flannel_network_cidr"
	KeyCalicoIPv4Pool            = "calico_ipv4pool"
	KeyCloudProviderEnabled      = "cloud_provider_enabled"
	KeyKeystoneAuthEnabled       = "keystone_auth_enabled"
	KeyCertManagerAPI            = "cert_manager_api"
	KeyDockerVolumeType          = "docker_volume_type"
	KeyEtcdVolumeType            = "etcd_volume_type"
	KeyEtcdVolumeSize            = "etcd_volume_size"
	KeyBootVolumeType            = "boot_volume_type"
	KeyBootVolumeSize            = "boot_volume_size"
	KeyMasterLBFloatingIPEnabled = "master_lb_floating_ip_enabled"
)

// Values accepted as true and false when parsing boolean labels.
// Matching is case-insensitive and ignores surrounding whitespace.
var (
	trueStrings  = []string{"1", "t", "true", "on", "y", "yes"}
	falseStrings = []string{"0", "f", "false", "off", "n", "no"}
)

// Labels is a read-only view over a cluster's label map.
// The zero value is an empty label set.
type Labels struct {
	m map[string]string
}

// New wraps m. The map is not copied; callers must not mutate it while the
// Labels value is in use.
func New(m map[string]string) Labels {
	return Labels{m: m}
}

// Lookup returns the raw value for key and whether it is set.
func (l Labels) Lookup(key string) (string, bool) {
	v, ok := l.m[key]
	return v, ok
}

// Has reports whether key is set to a non-empty value.
func (l Labels) Has(key string) bool {
	return l.m[key] != ""
}

// String returns the value for key, or def when the key is absent.
// A key set to the empty string is returned as is.
func (l Labels) String(key, def string) string {
	if v, ok := l.m[key]; ok {
		return v
	}
	return def
}

// Bool parses the value for key as a boolean, returning def when absent.
// Unrecognized values parse as false.
func (l Labels) Bool(key string, def bool) bool {
	v, ok := l.m[key]
	if !ok {
		return def
	}
	return ParseBool(v)
}

// IntOr parses the value for key as a base-10 integer, returning def when
// the key is absent or not a valid integer.
func (l Labels) IntOr(key string, def int) int {
	v, ok := l.m[key]
	if !ok {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// Keys returns the label keys in sorted order.
func (l Labels) Keys() []string {
	keys := make([]string, 0, len(l.m))
	for k := range l.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseBool interprets s as a boolean the way label values are written
// ("True", "yes", "1", "on", ...). Anything not recognized as true is false.
func ParseBool(s string) bool {
	v, _ := parseBool(s)
	return v
}

func parseBool(s string) (value, recognized bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range trueStrings {
		if s == t {
			return true, true
		}
	}
	for _, f := range falseStrings {
		if s == f {
			return false, true
		}
	}
	return false, false
}
