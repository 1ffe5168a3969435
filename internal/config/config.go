package config

// Nodes affinity policies accepted by the compute scheduler.
const (
	AffinityPolicyAffinity         = "affinity"
	AffinityPolicyAntiAffinity     = "anti-affinity"
	AffinityPolicySoftAffinity     = "soft-affinity"
	AffinityPolicySoftAntiAffinity = "soft-anti-affinity"
)

// Certificate manager backends.
const (
	CertManagerLocal = "local"
	CertManagerS3    = "s3"
)

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultNodesAffinityPolicy     = AffinityPolicySoftAntiAffinity
	DefaultKeystoneAuthPolicyFile  = "/etc/magnum/keystone_auth_default_policy.json"
	DefaultCertificateStoragePath  = "/var/lib/magnum/certificates/"
	DefaultCertificateObjectPrefix = "certificates/"
	DefaultHCloudLocation          = "nbg1"
	DefaultLogLevel                = "info"
)

// Config is the process-wide configuration.
type Config struct {
	Cluster      ClusterConfig      `yaml:"cluster"`
	Cinder       CinderConfig       `yaml:"cinder"`
	Kubernetes   KubernetesConfig   `yaml:"kubernetes"`
	Certificates CertificatesConfig `yaml:"certificates"`
	HCloud       HCloudConfig       `yaml:"hcloud"`
	S3           S3Config           `yaml:"s3"`
	Log          LogConfig          `yaml:"log"`
}

// ClusterConfig holds cluster-wide scheduling defaults.
type ClusterConfig struct {
	// NodesAffinityPolicy is the server group policy applied to cluster nodes.
	NodesAffinityPolicy string `yaml:"nodes_affinity_policy"`
}

// CinderConfig holds block storage defaults.
type CinderConfig struct {
	// DefaultDockerVolumeType is used when the docker_volume_type label is unset.
	// Empty leaves the type unresolved unless the label is set.
	DefaultDockerVolumeType string `yaml:"default_docker_volume_type"`
	// DefaultEtcdVolumeType is used when the etcd_volume_type label is unset.
	DefaultEtcdVolumeType string `yaml:"default_etcd_volume_type"`
	// DefaultBootVolumeType is used when the boot_volume_type label is unset.
	DefaultBootVolumeType string `yaml:"default_boot_volume_type"`
	// DefaultBootVolumeSize is the boot volume size in GB used when the
	// boot_volume_size label is unset.
	DefaultBootVolumeSize int `yaml:"default_boot_volume_size"`
}

// KubernetesConfig holds Kubernetes driver settings.
type KubernetesConfig struct {
	// KeystoneAuthDefaultPolicy is the path of the JSON policy file used by
	// the k8s keystone auth webhook.
	KeystoneAuthDefaultPolicy string `yaml:"keystone_auth_default_policy"`
}

// CertificatesConfig selects and configures the CA record store.
type CertificatesConfig struct {
	// CertManagerType is either "local" or "s3".
	CertManagerType string `yaml:"cert_manager_type"`
	// StoragePath is the directory used by the local store.
	StoragePath string `yaml:"storage_path"`
	// ObjectPrefix is the key prefix used by the object storage store.
	ObjectPrefix string `yaml:"object_prefix"`
}

// HCloudConfig configures the Hetzner Cloud collaborator.
type HCloudConfig struct {
	Token    string `yaml:"token"`
	Endpoint string `yaml:"endpoint"`
	Location string `yaml:"location"`
}

// Enabled reports whether a Hetzner Cloud token is configured.
func (h HCloudConfig) Enabled() bool {
	return h.Token != ""
}

// S3Config configures object storage for the certificate store.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// LogConfig configures process logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Cluster.NodesAffinityPolicy == "" {
		c.Cluster.NodesAffinityPolicy = DefaultNodesAffinityPolicy
	}
	if c.Kubernetes.KeystoneAuthDefaultPolicy == "" {
		c.Kubernetes.KeystoneAuthDefaultPolicy = DefaultKeystoneAuthPolicyFile
	}
	if c.Certificates.CertManagerType == "" {
		c.Certificates.CertManagerType = CertManagerLocal
	}
	if c.Certificates.StoragePath == "" {
		c.Certificates.StoragePath = DefaultCertificateStoragePath
	}
	if c.Certificates.ObjectPrefix == "" {
		c.Certificates.ObjectPrefix = DefaultCertificateObjectPrefix
	}
	if c.HCloud.Location == "" {
		c.HCloud.Location = DefaultHCloudLocation
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
