package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	assert.Equal(t, AffinityPolicySoftAntiAffinity, cfg.Cluster.NodesAffinityPolicy)
	assert.Equal(t, DefaultKeystoneAuthPolicyFile, cfg.Kubernetes.KeystoneAuthDefaultPolicy)
	assert.Equal(t, CertManagerLocal, cfg.Certificates.CertManagerType)
	assert.Equal(t, DefaultCertificateStoragePath, cfg.Certificates.StoragePath)
	assert.Equal(t, DefaultHCloudLocation, cfg.HCloud.Location)
	assert.Equal(t, 0, cfg.Cinder.DefaultBootVolumeSize)
	assert.False(t, cfg.HCloud.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"bad affinity", func(c *Config) { c.Cluster.NodesAffinityPolicy = "spread" }, "nodes_affinity_policy"},
		{"negative boot volume", func(c *Config) { c.Cinder.DefaultBootVolumeSize = -1 }, "default_boot_volume_size"},
		{"bad location with token", func(c *Config) {
			c.HCloud.Token = "t"
			c.HCloud.Location = "mars1"
		}, "hcloud.location"},
		{"bad location ignored without token", func(c *Config) { c.HCloud.Location = "mars1" }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"unknown cert manager", func(c *Config) { c.Certificates.CertManagerType = "barbican" }, "cert_manager_type"},
		{"s3 without bucket", func(c *Config) {
			c.Certificates.CertManagerType = CertManagerS3
			c.S3.Endpoint = "https://fsn1.your-objectstorage.com"
		}, "s3.bucket"},
		{"s3 without endpoint", func(c *Config) {
			c.Certificates.CertManagerType = CertManagerS3
			c.S3.Bucket = "certs"
		}, "s3.endpoint"},
		{"s3 complete", func(c *Config) {
			c.Certificates.CertManagerType = CertManagerS3
			c.S3.Bucket = "certs"
			c.S3.Endpoint = "https://fsn1.your-objectstorage.com"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
