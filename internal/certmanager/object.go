package certmanager

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/platform/s3"
)

// Objects is the bucket an ObjectStore keeps its records in.
type Objects interface {
	Name() string
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// record is the YAML document stored per CA.
type record struct {
	Certificate string `yaml:"certificate"`
	PrivateKey  string `yaml:"private_key"`
	Passphrase  string `yaml:"passphrase"`
}

// ObjectStore reads CA records stored as YAML objects at <prefix><ref>.yaml.
type ObjectStore struct {
	objects Objects
	prefix  string
}

// NewObjectStore returns a store reading from objects under prefix.
func NewObjectStore(objects Objects, prefix string) *ObjectStore {
	return &ObjectStore{objects: objects, prefix: prefix}
}

func (s *ObjectStore) key(ref string) string {
	return s.prefix + ref + ".yaml"
}

// GetClusterCACertificate implements Store.
func (s *ObjectStore) GetClusterCACertificate(ctx context.Context, c *cluster.Cluster) (*Certificate, error) {
	ref, err := certRef(c)
	if err != nil {
		return nil, err
	}

	key := s.key(ref)
	logr.FromContextOrDiscard(ctx).V(1).Info("Fetching CA record", "bucket", s.objects.Name(), "key", key)

	data, err := s.objects.Read(ctx, key)
	if err != nil {
		if s3.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrCertificateNotFound, key, err)
		}
		return nil, fmt.Errorf("failed to fetch CA record: %w", err)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse CA record %s: %w", key, err)
	}
	if rec.Certificate == "" || rec.PrivateKey == "" {
		return nil, fmt.Errorf("CA record %s is incomplete", key)
	}

	return &Certificate{
		Certificate: []byte(rec.Certificate),
		PrivateKey:  []byte(rec.PrivateKey),
		Passphrase:  rec.Passphrase,
	}, nil
}

// Put stores the CA record for ref.
func (s *ObjectStore) Put(ctx context.Context, ref string, cert *Certificate) error {
	data, err := yaml.Marshal(record{
		Certificate: string(cert.Certificate),
		PrivateKey:  string(cert.PrivateKey),
		Passphrase:  cert.Passphrase,
	})
	if err != nil {
		return fmt.Errorf("failed to encode CA record: %w", err)
	}
	if err := s.objects.Write(ctx, s.key(ref), data); err != nil {
		return fmt.Errorf("failed to store CA record: %w", err)
	}
	return nil
}
