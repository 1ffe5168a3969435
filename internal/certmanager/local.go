package certmanager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/vexxhost/magnum/internal/cluster"
)

// File extensions of the parts of a local CA record.
const (
	certExt = ".crt"
	keyExt  = ".key"
	passExt = ".pass"
)

// LocalStore reads CA records from a directory. Each record is three files
// named after the certificate reference: <ref>.crt, <ref>.key and <ref>.pass.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// GetClusterCACertificate implements Store.
func (s *LocalStore) GetClusterCACertificate(ctx context.Context, c *cluster.Cluster) (*Certificate, error) {
	ref, err := certRef(c)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(ref, `/\`) || ref == "." || ref == ".." {
		return nil, fmt.Errorf("invalid certificate reference %q", ref)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Reading CA record", "dir", s.dir, "ref", ref)

	cert, err := s.read(ref + certExt)
	if err != nil {
		return nil, err
	}
	key, err := s.read(ref + keyExt)
	if err != nil {
		return nil, err
	}
	pass, err := s.read(ref + passExt)
	if err != nil {
		return nil, err
	}

	return &Certificate{
		Certificate: cert,
		PrivateKey:  key,
		Passphrase:  strings.TrimRight(string(pass), "\r\n"),
	}, nil
}

// Put writes a CA record for ref, creating the directory if needed.
func (s *LocalStore) Put(ref string, cert *Certificate) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create certificate directory: %w", err)
	}

	files := map[string][]byte{
		ref + certExt: cert.Certificate,
		ref + keyExt:  cert.PrivateKey,
		ref + passExt: []byte(cert.Passphrase),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func (s *LocalStore) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCertificateNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
