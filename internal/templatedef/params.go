package templatedef

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/util/keygen"
	"github.com/vexxhost/magnum/internal/util/labels"
)

// Default pod network ranges per network driver.
const (
	DefaultFlannelNetworkCIDR = "10.100.0.0/16"
	DefaultCalicoIPv4Pool     = "192.168.0.0/16"
)

// Params is the flat parameter set passed to the orchestration engine.
// Values are strings, ints or bools.
type Params map[string]any

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// builder accumulates parameters on a private copy of the seed.
type builder struct {
	params Params
	log    logr.Logger
}

func newBuilder(seed Params, log logr.Logger) *builder {
	params := make(Params, len(seed)+48)
	for k, v := range seed {
		params[k] = v
	}
	return &builder{params: params, log: log}
}

// set stores value under key. Replacing an existing different value is
// logged so seeded keys are never overwritten silently.
func (b *builder) set(key string, value any) {
	if old, ok := b.params[key]; ok && !reflect.DeepEqual(old, value) {
		b.log.V(1).Info("Overriding seeded parameter", "key", key)
	}
	b.params[key] = value
}

// setDefault stores value under key unless the key is already present.
func (b *builder) setDefault(key string, value any) {
	if _, ok := b.params[key]; !ok {
		b.params[key] = value
	}
}

func (b *builder) get(key string) (any, bool) {
	v, ok := b.params[key]
	return v, ok
}

// isSet reports whether key holds a non-empty value.
func (b *builder) isSet(key string) bool {
	switch v := b.params[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case int:
		return v != 0
	default:
		return true
	}
}

// Params builds the parameter set for creating c from tmpl. seed holds
// caller-supplied parameters; it is copied and never modified. The result is
// only returned once every check has passed.
func (d *Definition) Params(ctx context.Context, tmpl *cluster.Template, c *cluster.Cluster, seed Params) (params Params, err error) {
	start := time.Now()
	defer func() {
		recordParams(err, time.Since(start))
	}()

	if tmpl == nil || c == nil {
		return nil, invalidParameter("cluster template and cluster are required")
	}

	log := logr.FromContextOrDiscard(ctx).WithValues("cluster", c.UUID, "template", tmpl.UUID)
	ctx = logr.NewContext(ctx, log)

	b := newBuilder(seed, log)
	lbl := labels.New(c.Labels)

	setAttributeParams(b, tmpl, c)

	b.set("username", RequestContextFrom(ctx).UserName)

	if d.cloud == nil {
		return nil, errors.New("no cloud client configured")
	}
	region, err := d.cloud.RegionName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve region name: %w", err)
	}
	b.set("region_name", region)

	vols, err := d.resolveVolumes(ctx, lbl)
	if err != nil {
		return nil, err
	}
	vols.apply(b)

	b.set("nodes_affinity_policy", d.cfg.Cluster.NodesAffinityPolicy)

	if cidr, ok := podsNetworkCIDR(tmpl.NetworkDriver, lbl); ok {
		b.set("pods_network_cidr", cidr)
	}

	if err := checkCloudProvider(tmpl, lbl); err != nil {
		return nil, err
	}

	b.set("master_image", tmpl.ImageID)
	b.set("minion_image", tmpl.ImageID)

	applyPassthrough(b, lbl)

	if err := d.setServiceAccountKeys(ctx, b); err != nil {
		return nil, err
	}

	b.set("project_id", c.ProjectID)

	if !b.isSet("max_node_count") {
		b.set("max_node_count", c.NodeCount+1)
	}

	if err := d.setCertManagerParams(ctx, c, lbl, b); err != nil {
		return nil, err
	}

	d.setKeystoneAuthPolicy(ctx, b, c.ProjectID)

	log.V(1).Info("Built template parameters", "count", len(b.params))
	return b.params, nil
}

// podsNetworkCIDR returns the pod network range for driver, if the driver
// has one.
func podsNetworkCIDR(driver string, lbl labels.Labels) (string, bool) {
	switch driver {
	case cluster.NetworkDriverFlannel:
		return lbl.String(labels.KeyFlannelNetworkCIDR, DefaultFlannelNetworkCIDR), true
	case cluster.NetworkDriverCalico:
		return lbl.String(labels.KeyCalicoIPv4Pool, DefaultCalicoIPv4Pool), true
	default:
		return "", false
	}
}

// checkCloudProvider rejects the cinder volume driver when the cloud
// provider integration is disabled. A blank label counts as unset.
func checkCloudProvider(tmpl *cluster.Template, lbl labels.Labels) error {
	if tmpl.VolumeDriver != cluster.VolumeDriverCinder {
		return nil
	}
	v, ok := lbl.Lookup(labels.KeyCloudProviderEnabled)
	if ok && strings.TrimSpace(v) != "" && !labels.ParseBool(v) {
		return invalidParameter(`%q volume driver needs %q label to be true or unset`,
			cluster.VolumeDriverCinder, labels.KeyCloudProviderEnabled)
	}
	return nil
}

func (d *Definition) setServiceAccountKeys(ctx context.Context, b *builder) error {
	pair, err := d.keypair(keygen.ServiceAccountSubject)
	if err != nil {
		return fmt.Errorf("failed to generate service account keypair: %w", err)
	}

	if fp, err := pair.Fingerprint(); err == nil {
		logr.FromContextOrDiscard(ctx).V(1).Info("Generated service account keypair", "fingerprint", fp)
	}

	public, private := pair.Escaped()
	b.set("kube_service_account_key", public)
	b.set("kube_service_account_private_key", private)
	return nil
}

// setAttributeParams copies template and cluster attributes that map
// directly onto parameters. Seeded values take precedence.
func setAttributeParams(b *builder, tmpl *cluster.Template, c *cluster.Cluster) {
	if c.UUID != "" {
		b.setDefault("cluster_uuid", c.UUID)
	}
	b.setDefault("number_of_masters", c.MasterCount)
	b.setDefault("number_of_minions", c.NodeCount)
	if c.DockerVolumeSize != nil {
		b.setDefault("docker_volume_size", *c.DockerVolumeSize)
	}
	if tmpl.DockerStorageDriver != "" {
		b.setDefault("docker_storage_driver", tmpl.DockerStorageDriver)
	}
	if tmpl.NetworkDriver != "" {
		b.setDefault("network_driver", tmpl.NetworkDriver)
	}
	if tmpl.VolumeDriver != "" {
		b.setDefault("volume_driver", tmpl.VolumeDriver)
	}
}
