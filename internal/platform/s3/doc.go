// Package s3 opens a single bucket on S3-compatible object storage.
//
// The certificate store keeps one YAML record per cluster CA in the bucket.
// Hetzner Object Storage uses virtual-hosted addressing; [WithPathStyle]
// switches to path-style for services that need it.
package s3
