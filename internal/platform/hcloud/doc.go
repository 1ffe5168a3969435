// Package hcloud answers the cloud lookups the template definition needs
// from the Hetzner Cloud API.
//
// The configured location determines the region name reported to the
// provisioning engine: the location's network zone. Lookups rejected with rate_limit_exceeded are
// repeated with backoff; other API errors are returned as they are.
//
// # Example Usage
//
//	client := hcloud.NewRealClient(token, hcloud.WithLocation("fsn1"))
//	region, err := client.RegionName(ctx)
package hcloud
