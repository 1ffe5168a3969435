package volume

import (
	"context"
	"errors"
	"fmt"

	"github.com/vexxhost/magnum/internal/config"
)

// Kind identifies which cluster volume a type is resolved for.
type Kind string

// Volume kinds.
const (
	KindDocker Kind = "docker"
	KindEtcd   Kind = "etcd"
	KindBoot   Kind = "boot"
)

// ErrVolumeTypeNotFound is returned when no volume type is configured for a
// kind.
var ErrVolumeTypeNotFound = errors.New("volume type not found")

// Resolver resolves default volume types. It is safe for concurrent use.
type Resolver struct {
	defaults config.CinderConfig
}

// NewResolver returns a Resolver over the configured defaults.
func NewResolver(defaults config.CinderConfig) *Resolver {
	return &Resolver{defaults: defaults}
}

// DefaultVolumeType returns the configured default volume type for kind.
func (r *Resolver) DefaultVolumeType(_ context.Context, kind Kind) (string, error) {
	if t := r.configured(kind); t != "" {
		return t, nil
	}
	return "", fmt.Errorf("%w: no default configured for %s volumes", ErrVolumeTypeNotFound, kind)
}

func (r *Resolver) configured(kind Kind) string {
	switch kind {
	case KindDocker:
		return r.defaults.DefaultDockerVolumeType
	case KindEtcd:
		return r.defaults.DefaultEtcdVolumeType
	case KindBoot:
		return r.defaults.DefaultBootVolumeType
	default:
		return ""
	}
}
