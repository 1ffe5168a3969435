// Package keygen generates key material handed to provisioned clusters.
//
// The Kubernetes service account signing key is produced together with a
// certificate signing request bound to it. Keys are returned PEM encoded and
// are never persisted by this package.
package keygen
