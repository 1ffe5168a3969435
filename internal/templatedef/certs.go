package templatedef

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/vexxhost/magnum/internal/cluster"
	"github.com/vexxhost/magnum/internal/util/keygen"
	"github.com/vexxhost/magnum/internal/util/labels"
)

// setCertManagerParams adds the decrypted cluster CA key when the
// cert_manager_api label is enabled.
func (d *Definition) setCertManagerParams(ctx context.Context, c *cluster.Cluster, lbl labels.Labels, b *builder) error {
	value, ok := lbl.Lookup(labels.KeyCertManagerAPI)
	if !ok || !labels.ParseBool(value) {
		return nil
	}

	key, err := d.resolveCAKey(ctx, c)
	if err != nil {
		return err
	}

	b.set("cert_manager_api", value)
	b.set("ca_key", key)
	return nil
}

// resolveCAKey fetches the cluster CA record and returns its private key
// decrypted and newline-escaped.
func (d *Definition) resolveCAKey(ctx context.Context, c *cluster.Cluster) (string, error) {
	if d.certs == nil {
		return "", errors.New("cert_manager_api is enabled but no certificate store is configured")
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Fetching cluster CA for cert manager", "ref", c.CACertRef)

	ca, err := d.certs.GetClusterCACertificate(ctx, c)
	if err != nil {
		return "", fmt.Errorf("failed to get cluster CA certificate: %w", err)
	}

	keyPEM, err := d.decrypt(ca.PrivateKey, []byte(ca.Passphrase))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt cluster CA private key: %w", err)
	}

	return keygen.EscapeNewlines(string(keyPEM)), nil
}
