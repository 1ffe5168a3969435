package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays environment variables onto the configuration.
// Unset or invalid variables leave the current value untouched.
//
// Environment Variables:
//   - MAGNUM_NODES_AFFINITY_POLICY
//   - MAGNUM_DEFAULT_DOCKER_VOLUME_TYPE
//   - MAGNUM_DEFAULT_ETCD_VOLUME_TYPE
//   - MAGNUM_DEFAULT_BOOT_VOLUME_TYPE
//   - MAGNUM_DEFAULT_BOOT_VOLUME_SIZE
//   - MAGNUM_KEYSTONE_AUTH_DEFAULT_POLICY
//   - MAGNUM_CERT_MANAGER_TYPE
//   - MAGNUM_CERTIFICATES_PATH
//   - MAGNUM_LOG_LEVEL
//   - HCLOUD_TOKEN, HCLOUD_ENDPOINT, HCLOUD_LOCATION
//   - S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY
func (c *Config) ApplyEnv() {
	setString(&c.Cluster.NodesAffinityPolicy, "MAGNUM_NODES_AFFINITY_POLICY")
	setString(&c.Cinder.DefaultDockerVolumeType, "MAGNUM_DEFAULT_DOCKER_VOLUME_TYPE")
	setString(&c.Cinder.DefaultEtcdVolumeType, "MAGNUM_DEFAULT_ETCD_VOLUME_TYPE")
	setString(&c.Cinder.DefaultBootVolumeType, "MAGNUM_DEFAULT_BOOT_VOLUME_TYPE")
	c.Cinder.DefaultBootVolumeSize = parseInt("MAGNUM_DEFAULT_BOOT_VOLUME_SIZE", c.Cinder.DefaultBootVolumeSize)
	setString(&c.Kubernetes.KeystoneAuthDefaultPolicy, "MAGNUM_KEYSTONE_AUTH_DEFAULT_POLICY")
	setString(&c.Certificates.CertManagerType, "MAGNUM_CERT_MANAGER_TYPE")
	setString(&c.Certificates.StoragePath, "MAGNUM_CERTIFICATES_PATH")
	setString(&c.Log.Level, "MAGNUM_LOG_LEVEL")

	setString(&c.HCloud.Token, "HCLOUD_TOKEN")
	setString(&c.HCloud.Endpoint, "HCLOUD_ENDPOINT")
	setString(&c.HCloud.Location, "HCLOUD_LOCATION")

	setString(&c.S3.Endpoint, "S3_ENDPOINT")
	setString(&c.S3.Region, "S3_REGION")
	setString(&c.S3.Bucket, "S3_BUCKET")
	setString(&c.S3.AccessKey, "S3_ACCESS_KEY")
	setString(&c.S3.SecretKey, "S3_SECRET_KEY")
}

// setString replaces *dst with the environment variable when it is set.
func setString(dst *string, envVar string) {
	if val := os.Getenv(envVar); val != "" {
		*dst = val
	}
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
