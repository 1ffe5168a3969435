// Package crypto decrypts passphrase-protected private keys stored in
// certificate records.
//
// Both PKCS#8 "ENCRYPTED PRIVATE KEY" blocks (PBES2) and legacy
// OpenSSL-style encrypted PEM blocks are accepted. Decrypted keys are
// returned as unencrypted PKCS#8 PEM.
package crypto
