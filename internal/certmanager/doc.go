// Package certmanager retrieves cluster certificate authority records.
//
// A record holds the CA certificate, its encrypted private key and the
// passphrase protecting that key. Two stores are provided: LocalStore reads
// records from a directory and ObjectStore reads YAML records from an
// S3-compatible bucket. New selects one from process configuration.
package certmanager
