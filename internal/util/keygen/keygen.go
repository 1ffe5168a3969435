package keygen

import (
	"crypto/rsa"
	stdlibx509 "crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/siderolabs/crypto/x509"
	"golang.org/x/crypto/ssh"
)

// ServiceAccountSubject is the CSR common name used for the Kubernetes
// service account signing key.
const ServiceAccountSubject = "Kubernetes Service Account"

// CredentialPair holds a freshly generated key pair and its CSR.
type CredentialPair struct {
	// PublicKey is the PEM-encoded PKIX public key.
	PublicKey []byte
	// PrivateKey is the PEM-encoded PKCS#1 private key.
	PrivateKey []byte
	// CSR is the PEM-encoded certificate signing request for the key.
	CSR []byte
}

// GenerateServiceAccountKeypair generates an RSA key pair and a certificate
// signing request with the given subject common name.
func GenerateServiceAccountKeypair(subject string) (*CredentialPair, error) {
	key, err := x509.NewRSAKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}

	block, _ := pem.Decode(key.KeyPEM)
	if block == nil {
		return nil, errors.New("failed to decode generated key PEM")
	}

	rsaKey, err := stdlibx509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated key: %w", err)
	}

	csr, err := x509.NewCertificateSigningRequest(rsaKey, x509.CommonName(subject))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSR: %w", err)
	}

	pubDER, err := stdlibx509.MarshalPKIXPublicKey(&rsaKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	return &CredentialPair{
		PublicKey:  pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}),
		PrivateKey: key.KeyPEM,
		CSR:        csr.X509CertificateRequestPEM,
	}, nil
}

// Escaped returns the public and private keys with every newline replaced by
// the two characters `\n`, the form expected by single-line template
// parameters.
func (p *CredentialPair) Escaped() (public, private string) {
	return EscapeNewlines(string(p.PublicKey)), EscapeNewlines(string(p.PrivateKey))
}

// Fingerprint returns the SHA256 fingerprint of the public key in the
// OpenSSH format, suitable for logging.
func (p *CredentialPair) Fingerprint() (string, error) {
	block, _ := pem.Decode(p.PublicKey)
	if block == nil {
		return "", errors.New("failed to decode public key PEM")
	}

	pub, err := stdlibx509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return "", fmt.Errorf("unexpected public key type %T", pub)
	}

	sshPub, err := ssh.NewPublicKey(rsaPub)
	if err != nil {
		return "", fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return ssh.FingerprintSHA256(sshPub), nil
}

// EscapeNewlines replaces "\n" with a literal backslash followed by "n".
func EscapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
