package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/vexxhost/magnum/internal/util/retry"
)

// RegionName returns the network zone of the configured location, which is
// the region clusters in that location belong to.
func (c *RealClient) RegionName(ctx context.Context) (string, error) {
	loc, err := c.resolveLocation(ctx, c.location)
	if err != nil {
		return "", err
	}
	return string(loc.NetworkZone), nil
}

// resolveLocation resolves a location name to a location object.
func (c *RealClient) resolveLocation(ctx context.Context, location string) (*hcloud.Location, error) {
	if location == "" {
		return nil, fmt.Errorf("location is not configured")
	}

	var locObj *hcloud.Location
	err := c.do(ctx, "get location", func(ctx context.Context) error {
		var err error
		locObj, _, err = c.client.Location.Get(ctx, location)
		return err
	})
	if IsUnauthorized(err) {
		return nil, fmt.Errorf("hcloud token rejected while looking up location %s: %w", location, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", location, err)
	}
	if locObj == nil {
		return nil, fmt.Errorf("location not found: %s", location)
	}
	return locObj, nil
}

// do repeats a lookup while the API reports rate limiting.
func (c *RealClient) do(ctx context.Context, name string, op func(context.Context) error) error {
	opts := append([]retry.Option{retry.If(IsRateLimited)}, c.retry...)
	return retry.Do(ctx, name, op, opts...)
}
