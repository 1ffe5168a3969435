// Package volume resolves default block storage volume types.
//
// Defaults come from configuration only. Hetzner Cloud volumes carry no
// type, so the cloud is never asked; a kind without a configured default
// resolves to [ErrVolumeTypeNotFound].
package volume
