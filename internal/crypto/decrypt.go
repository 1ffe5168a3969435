package crypto

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/youmark/pkcs8"
)

const (
	pemTypeEncryptedPKCS8 = "ENCRYPTED PRIVATE KEY"
	pemTypePKCS8          = "PRIVATE KEY"
)

// ErrDecrypt is returned when a private key cannot be decrypted.
var ErrDecrypt = errors.New("failed to decrypt private key")

// DecryptPrivateKey decrypts the PEM-encoded keyPEM with passphrase and
// returns the key as unencrypted PKCS#8 PEM.
//
// An unencrypted key is only accepted when passphrase is empty.
func DecryptPrivateKey(keyPEM, passphrase []byte) ([]byte, error) {
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrDecrypt)
	}

	key, err := decryptBlock(block, passphrase)
	if err != nil {
		return nil, err
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: pemTypePKCS8, Bytes: der}), nil
}

func decryptBlock(block *pem.Block, passphrase []byte) (any, error) {
	switch {
	case block.Type == pemTypeEncryptedPKCS8:
		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, passphrase)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
		}
		return key, nil

	case x509.IsEncryptedPEMBlock(block): //nolint:staticcheck // legacy records still use RFC 1423 encryption
		der, err := x509.DecryptPEMBlock(block, passphrase) //nolint:staticcheck // see above
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
		}
		return parseDER(der)

	default:
		if len(passphrase) > 0 {
			return nil, fmt.Errorf("%w: key is not encrypted", ErrDecrypt)
		}
		return parseDER(block.Bytes)
	}
}

func parseDER(der []byte) (any, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("%w: unsupported private key encoding", ErrDecrypt)
}
