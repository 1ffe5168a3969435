package config

import (
	"fmt"
	"sort"
	"strings"
)

// ValidAffinityPolicies contains the accepted nodes_affinity_policy values.
var ValidAffinityPolicies = map[string]bool{
	AffinityPolicyAffinity:         true,
	AffinityPolicyAntiAffinity:     true,
	AffinityPolicySoftAffinity:     true,
	AffinityPolicySoftAntiAffinity: true,
}

// ValidLocations contains all valid Hetzner Cloud datacenter locations.
// https://docs.hetzner.com/cloud/general/locations/
var ValidLocations = map[string]bool{
	"nbg1": true, // Nuremberg, Germany
	"fsn1": true, // Falkenstein, Germany
	"hel1": true, // Helsinki, Finland
	"ash":  true, // Ashburn, USA
	"hil":  true, // Hillsboro, USA
	"sin":  true, // Singapore
}

// ValidLogLevels contains the accepted log levels.
var ValidLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for common errors.
func (c *Config) Validate() error {
	if !ValidAffinityPolicies[c.Cluster.NodesAffinityPolicy] {
		return fmt.Errorf("invalid cluster.nodes_affinity_policy %q: must be one of %s",
			c.Cluster.NodesAffinityPolicy, joinKeys(ValidAffinityPolicies))
	}

	if c.Cinder.DefaultBootVolumeSize < 0 {
		return fmt.Errorf("cinder.default_boot_volume_size must not be negative, got %d", c.Cinder.DefaultBootVolumeSize)
	}

	if c.HCloud.Enabled() && !ValidLocations[c.HCloud.Location] {
		return fmt.Errorf("invalid hcloud.location %q: must be one of %s", c.HCloud.Location, joinKeys(ValidLocations))
	}

	if !ValidLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}

	return c.validateCertificates()
}

func (c *Config) validateCertificates() error {
	switch c.Certificates.CertManagerType {
	case CertManagerLocal:
		if c.Certificates.StoragePath == "" {
			return fmt.Errorf("certificates.storage_path is required for the local cert manager")
		}
	case CertManagerS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required for the s3 cert manager")
		}
		if c.S3.Endpoint == "" {
			return fmt.Errorf("s3.endpoint is required for the s3 cert manager")
		}
	default:
		return fmt.Errorf("invalid certificates.cert_manager_type %q: must be %q or %q",
			c.Certificates.CertManagerType, CertManagerLocal, CertManagerS3)
	}
	return nil
}

func joinKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
