package templatedef

import (
	"context"
	"fmt"

	"github.com/vexxhost/magnum/internal/util/labels"
	"github.com/vexxhost/magnum/internal/volume"
)

// volumeParams are the resolved volume types and boot volume size.
type volumeParams struct {
	DockerType string
	EtcdType   string
	BootType   string
	// BootSize is the label value (string) when set, otherwise the
	// configured default (int).
	BootSize any
}

func (v volumeParams) apply(b *builder) {
	b.set("docker_volume_type", v.DockerType)
	b.set("etcd_volume_type", v.EtcdType)
	b.set("boot_volume_type", v.BootType)
	b.set("boot_volume_size", v.BootSize)
}

// resolveVolumes resolves each volume type from its label, falling back to
// the resolver default. It has no side effects beyond resolver lookups.
func (d *Definition) resolveVolumes(ctx context.Context, lbl labels.Labels) (volumeParams, error) {
	var (
		out volumeParams
		err error
	)

	if out.DockerType, err = d.volumeType(ctx, lbl, labels.KeyDockerVolumeType, volume.KindDocker); err != nil {
		return volumeParams{}, err
	}
	if out.EtcdType, err = d.volumeType(ctx, lbl, labels.KeyEtcdVolumeType, volume.KindEtcd); err != nil {
		return volumeParams{}, err
	}
	if out.BootType, err = d.volumeType(ctx, lbl, labels.KeyBootVolumeType, volume.KindBoot); err != nil {
		return volumeParams{}, err
	}

	if size, ok := lbl.Lookup(labels.KeyBootVolumeSize); ok {
		out.BootSize = size
	} else {
		out.BootSize = d.cfg.Cinder.DefaultBootVolumeSize
	}

	return out, nil
}

func (d *Definition) volumeType(ctx context.Context, lbl labels.Labels, key string, kind volume.Kind) (string, error) {
	if v, ok := lbl.Lookup(key); ok {
		return v, nil
	}
	if d.volumes == nil {
		return "", fmt.Errorf("no volume type resolver configured for %s volumes", kind)
	}
	t, err := d.volumes.DefaultVolumeType(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("failed to resolve default %s volume type: %w", kind, err)
	}
	return t, nil
}
