package hcloud

import (
	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/vexxhost/magnum/internal/config"
	"github.com/vexxhost/magnum/internal/util/retry"
)

// RealClient implements the cloud lookups using the Hetzner Cloud API.
// It holds no mutable state and is safe for concurrent use.
type RealClient struct {
	client   *hcloud.Client
	location string
	retry    []retry.Option
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHCloudClient sets a custom hcloud client (useful for testing).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *RealClient) {
		c.client = hc
	}
}

// WithLocation sets the location clusters are provisioned in.
func WithLocation(location string) ClientOption {
	return func(c *RealClient) {
		c.location = location
	}
}

// WithRetry adjusts how rate-limited lookups are repeated.
func WithRetry(opts ...retry.Option) ClientOption {
	return func(c *RealClient) {
		c.retry = append(c.retry, opts...)
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client:   hcloud.NewClient(hcloud.WithToken(token), hcloud.WithApplication("magnum", "")),
		location: config.DefaultHCloudLocation,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a RealClient from the process configuration.
func NewFromConfig(cfg config.HCloudConfig) *RealClient {
	opts := []hcloud.ClientOption{
		hcloud.WithToken(cfg.Token),
		hcloud.WithApplication("magnum", ""),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, hcloud.WithEndpoint(cfg.Endpoint))
	}

	return NewRealClient(cfg.Token,
		WithHCloudClient(hcloud.NewClient(opts...)),
		WithLocation(cfg.Location),
	)
}

// Location returns the configured location name.
func (c *RealClient) Location() string {
	return c.location
}
