package templatedef

import (
	"context"
	"os"

	"github.com/vexxhost/magnum/internal/certmanager"
	"github.com/vexxhost/magnum/internal/config"
	"github.com/vexxhost/magnum/internal/crypto"
	"github.com/vexxhost/magnum/internal/util/keygen"
	"github.com/vexxhost/magnum/internal/volume"
)

// Driver is the name this definition reports in metrics.
const Driver = "k8s_fedora"

// CloudClient answers questions about the cloud the cluster is created in.
type CloudClient interface {
	RegionName(ctx context.Context) (string, error)
}

// VolumeTypeResolver returns the default volume type for a volume kind.
type VolumeTypeResolver interface {
	DefaultVolumeType(ctx context.Context, kind volume.Kind) (string, error)
}

// KeypairGenerator generates a key pair and CSR for subject.
type KeypairGenerator func(subject string) (*keygen.CredentialPair, error)

// KeyDecrypter decrypts a PEM private key with passphrase.
type KeyDecrypter func(keyPEM, passphrase []byte) ([]byte, error)

// Definition is the Kubernetes Fedora template definition.
type Definition struct {
	cfg      *config.Config
	cloud    CloudClient
	volumes  VolumeTypeResolver
	certs    certmanager.Store
	keypair  KeypairGenerator
	decrypt  KeyDecrypter
	readFile func(name string) ([]byte, error)
}

// Option configures a Definition.
type Option func(*Definition)

// WithCertificateStore sets the store CA records are fetched from when the
// cert_manager_api label is enabled.
func WithCertificateStore(store certmanager.Store) Option {
	return func(d *Definition) {
		d.certs = store
	}
}

// WithKeypairGenerator overrides the service account key pair generator.
func WithKeypairGenerator(gen KeypairGenerator) Option {
	return func(d *Definition) {
		d.keypair = gen
	}
}

// WithKeyDecrypter overrides CA private key decryption.
func WithKeyDecrypter(dec KeyDecrypter) Option {
	return func(d *Definition) {
		d.decrypt = dec
	}
}

// WithPolicyReader overrides how the keystone auth policy file is read.
func WithPolicyReader(read func(name string) ([]byte, error)) Option {
	return func(d *Definition) {
		d.readFile = read
	}
}

// New returns a Definition. cfg is treated as read-only.
func New(cfg *config.Config, cloud CloudClient, volumes VolumeTypeResolver, opts ...Option) *Definition {
	if cfg == nil {
		cfg = config.Default()
	}
	d := &Definition{
		cfg:      cfg,
		cloud:    cloud,
		volumes:  volumes,
		keypair:  keygen.GenerateServiceAccountKeypair,
		decrypt:  crypto.DecryptPrivateKey,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
