package templatedef

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/config"
	"github.com/vexxhost/magnum/internal/util/keygen"
	"github.com/vexxhost/magnum/internal/volume"
)

func TestParams_CinderRequiresCloudProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		volumeDriver string
		labels       map[string]string
		wantErr      bool
	}{
		{name: "cinder without label", volumeDriver: cluster.VolumeDriverCinder},
		{name: "cinder with true", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": "true"}},
		{name: "cinder with True", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": "True"}},
		{name: "cinder with false", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": "false"}, wantErr: true},
		{name: "cinder with FALSE", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": "FALSE"}, wantErr: true},
		{name: "cinder with empty value", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": ""}},
		{name: "cinder with blank value", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": "  "}},
		{name: "cinder with unrecognized value", volumeDriver: cluster.VolumeDriverCinder, labels: map[string]string{"cloud_provider_enabled": "maybe"}, wantErr: true},
		{name: "none with false", volumeDriver: cluster.VolumeDriverNone, labels: map[string]string{"cloud_provider_enabled": "false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			def, _ := newTestDefinition()
			tmpl := testTemplate()
			tmpl.VolumeDriver = tt.volumeDriver
			c := testCluster()
			c.Labels = tt.labels

			params, err := def.Params(context.Background(), tmpl, c, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParameterValue)
				assert.Nil(t, params)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, params)
		})
	}
}

func TestParams_PodsNetworkCIDR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		driver  string
		labels  map[string]string
		want    string
		present bool
	}{
		{name: "flannel default", driver: "flannel", want: "10.100.0.0/16", present: true},
		{name: "flannel label", driver: "flannel", labels: map[string]string{"flannel_network_cidr": "10.200.0.0/16"}, want: "10.200.0.0/16", present: true},
		{name: "flannel ignores calico label", driver: "flannel", labels: map[string]string{"calico_ipv4pool": "172.16.0.0/16"}, want: "10.100.0.0/16", present: true},
		{name: "calico default", driver: "calico", want: "192.168.0.0/16", present: true},
		{name: "calico label", driver: "calico", labels: map[string]string{"calico_ipv4pool": "172.16.0.0/16"}, want: "172.16.0.0/16", present: true},
		{name: "other driver", driver: "cilium", labels: map[string]string{"flannel_network_cidr": "10.200.0.0/16"}},
		{name: "no driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			def, _ := newTestDefinition()
			tmpl := testTemplate()
			tmpl.NetworkDriver = tt.driver
			c := testCluster()
			c.Labels = tt.labels

			params, err := def.Params(context.Background(), tmpl, c, nil)
			require.NoError(t, err)

			got, ok := params["pods_network_cidr"]
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParams_MaxNodeCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels map[string]string
		seed   Params
		want   any
	}{
		{name: "default", want: 4},
		{name: "label", labels: map[string]string{"max_node_count": "10"}, want: "10"},
		{name: "empty label", labels: map[string]string{"max_node_count": ""}, want: 4},
		{name: "seed", seed: Params{"max_node_count": 7}, want: 7},
		{name: "empty seed", seed: Params{"max_node_count": ""}, want: 4},
		{name: "label wins over seed", labels: map[string]string{"max_node_count": "9"}, seed: Params{"max_node_count": 7}, want: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			def, _ := newTestDefinition()
			c := testCluster()
			c.Labels = tt.labels

			params, err := def.Params(context.Background(), testTemplate(), c, tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, params["max_node_count"])
		})
	}
}

func TestParams_Passthrough(t *testing.T) {
	t.Parallel()
	def, _ := newTestDefinition()
	c := testCluster()
	for i, name := range PassthroughLabels() {
		if i == 0 {
			c.Labels[name] = ""
			continue
		}
		c.Labels[name] = name + "-value"
	}
	c.Labels["not_allowed"] = "x"
	// keep the build valid and the policy active
	c.Labels["cloud_provider_enabled"] = "true"
	c.Labels["keystone_auth_enabled"] = "true"
	c.Labels["max_node_count"] = "5"

	params, err := def.Params(context.Background(), testTemplate(), c, nil)
	require.NoError(t, err)

	first := PassthroughLabels()[0]
	assert.NotContains(t, params, first, "empty labels are not passed through")
	assert.NotContains(t, params, "not_allowed")
	for _, name := range PassthroughLabels()[1:] {
		assert.Equal(t, c.Labels[name], params[name], name)
	}
}

func TestPassthroughLabels(t *testing.T) {
	t.Parallel()
	names := PassthroughLabels()
	assert.Len(t, names, 32)

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate label %s", n)
		seen[n] = true
	}
	assert.True(t, seen["coredns_tag"])
	assert.True(t, seen["max_node_count"])
}

func TestParams_ServiceAccountKeysEscaped(t *testing.T) {
	t.Parallel()
	def, _ := newTestDefinition()

	params, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.NoError(t, err)

	for _, key := range []string{"kube_service_account_key", "kube_service_account_private_key"} {
		v, ok := paramString(params, key)
		require.True(t, ok, key)
		assert.NotContains(t, v, "\n")
		assert.Contains(t, v, `\n`)
	}
	assert.Equal(t, strings.ReplaceAll(testPublicKey, "\n", `\n`), params["kube_service_account_key"])
	assert.Equal(t, strings.ReplaceAll(testPrivateKey, "\n", `\n`), params["kube_service_account_private_key"])
}

func TestParams_RealKeypair(t *testing.T) {
	t.Parallel()
	def := New(config.Default(), &fakeCloud{region: "r"}, newFakeVolumes(), WithPolicyReader(missingFile))

	params, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.NoError(t, err)

	pub, _ := paramString(params, "kube_service_account_key")
	priv, _ := paramString(params, "kube_service_account_private_key")
	assert.True(t, strings.HasPrefix(pub, `-----BEGIN PUBLIC KEY-----\n`))
	assert.Contains(t, priv, "PRIVATE KEY-----")
	assert.NotContains(t, priv, "\n")
}

func TestParams_KeypairError(t *testing.T) {
	t.Parallel()
	boom := errors.New("entropy exhausted")
	def, _ := newTestDefinition(WithKeypairGenerator(func(string) (*keygen.CredentialPair, error) { return nil, boom }))

	_, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParams_IdentityAndRegion(t *testing.T) {
	t.Parallel()
	def, _ := newTestDefinition()
	ctx := WithRequestContext(context.Background(), RequestContext{UserName: "alice", ProjectID: "p1"})

	tmpl := testTemplate()
	params, err := def.Params(ctx, tmpl, testCluster(), nil)
	require.NoError(t, err)

	assert.Equal(t, "alice", params["username"])
	assert.Equal(t, "eu-central", params["region_name"])
	assert.Equal(t, "p1", params["project_id"])
	assert.Equal(t, "fedora-coreos", params["master_image"])
	assert.Equal(t, "fedora-coreos", params["minion_image"])
	assert.Equal(t, config.DefaultNodesAffinityPolicy, params["nodes_affinity_policy"])
}

func TestParams_RegionError(t *testing.T) {
	t.Parallel()
	boom := errors.New("unauthorized")
	def := New(config.Default(), &fakeCloud{err: boom}, newFakeVolumes(), WithKeypairGenerator(fakeKeypair))

	_, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParams_NoCloudClient(t *testing.T) {
	t.Parallel()
	def := New(config.Default(), nil, newFakeVolumes(), WithKeypairGenerator(fakeKeypair))

	_, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.Error(t, err)
}

func TestParams_NilInputs(t *testing.T) {
	t.Parallel()
	def, _ := newTestDefinition()

	_, err := def.Params(context.Background(), nil, testCluster(), nil)
	assert.ErrorIs(t, err, ErrInvalidParameterValue)

	_, err = def.Params(context.Background(), testTemplate(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidParameterValue)
}

func TestParams_SeedIsCopied(t *testing.T) {
	t.Parallel()

	var logs []string
	log := funcr.New(func(prefix, args string) {
		logs = append(logs, args)
	}, funcr.Options{Verbosity: 1})
	ctx := logr.NewContext(context.Background(), log)

	def, _ := newTestDefinition()
	seed := Params{"project_id": "stale", "extra": "kept"}

	params, err := def.Params(ctx, testTemplate(), testCluster(), seed)
	require.NoError(t, err)

	assert.Equal(t, Params{"project_id": "stale", "extra": "kept"}, seed)
	assert.Equal(t, "p1", params["project_id"])
	assert.Equal(t, "kept", params["extra"])

	joined := strings.Join(logs, "\n")
	assert.Contains(t, joined, "Overriding seeded parameter")
	assert.Contains(t, joined, `"key"="project_id"`)
}

func TestParams_AttributeParams(t *testing.T) {
	t.Parallel()
	def, _ := newTestDefinition()
	tmpl := testTemplate()
	tmpl.DockerStorageDriver = "overlay2"
	c := testCluster()
	size := 20
	c.DockerVolumeSize = &size

	params, err := def.Params(context.Background(), tmpl, c, Params{"number_of_masters": 5})
	require.NoError(t, err)

	assert.Equal(t, "cluster-1", params["cluster_uuid"])
	assert.Equal(t, 5, params["number_of_masters"], "seed wins over attributes")
	assert.Equal(t, 3, params["number_of_minions"])
	assert.Equal(t, 20, params["docker_volume_size"])
	assert.Equal(t, "overlay2", params["docker_storage_driver"])
	assert.Equal(t, "flannel", params["network_driver"])
	assert.Equal(t, "none", params["volume_driver"])
}

func TestParams_AttributeParamsOmittedWhenUnset(t *testing.T) {
	t.Parallel()
	def, _ := newTestDefinition()

	params, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.NoError(t, err)

	assert.NotContains(t, params, "docker_volume_size")
	assert.NotContains(t, params, "docker_storage_driver")
}

func TestParams_Keys(t *testing.T) {
	t.Parallel()
	p := Params{"b": 1, "a": "x", "c": true}
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
}

func TestParams_VolumeResolverError(t *testing.T) {
	t.Parallel()
	def, vols := newTestDefinition()
	vols.err = volume.ErrVolumeTypeNotFound

	_, err := def.Params(context.Background(), testTemplate(), testCluster(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, volume.ErrVolumeTypeNotFound)
}
