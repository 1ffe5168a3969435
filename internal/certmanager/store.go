package certmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/config"
	"github.com/vexxhost/magnum/internal/platform/s3"
)

// ErrCertificateNotFound is returned when a cluster has no CA record.
var ErrCertificateNotFound = errors.New("certificate not found")

// Certificate is a cluster CA record.
type Certificate struct {
	Certificate []byte
	PrivateKey  []byte
	Passphrase  string
}

// Store fetches the CA record of a cluster.
type Store interface {
	GetClusterCACertificate(ctx context.Context, c *cluster.Cluster) (*Certificate, error)
}

// New returns the store selected by cfg.Certificates.CertManagerType.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Certificates.CertManagerType {
	case config.CertManagerLocal:
		return NewLocalStore(cfg.Certificates.StoragePath), nil
	case config.CertManagerS3:
		bucket, err := s3.Open(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to open object storage: %w", err)
		}
		return NewObjectStore(bucket, cfg.Certificates.ObjectPrefix), nil
	default:
		return nil, fmt.Errorf("unknown cert manager type %q", cfg.Certificates.CertManagerType)
	}
}

func certRef(c *cluster.Cluster) (string, error) {
	if c == nil || c.CACertRef == "" {
		return "", fmt.Errorf("%w: cluster has no CA certificate reference", ErrCertificateNotFound)
	}
	return c.CACertRef, nil
}
