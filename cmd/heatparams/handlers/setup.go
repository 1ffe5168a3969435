package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/vexxhost/magnum/internal/certmanager"
	"github.com/vexxhost/magnum/internal/config"
	"github.com/vexxhost/magnum/internal/platform/hcloud"
	"github.com/vexxhost/magnum/internal/templatedef"
	"github.com/vexxhost/magnum/internal/volume"
)

type configKey struct{}

// Init loads the configuration at configPath, creates the process logger and
// returns a context carrying both. An empty logLevel uses the configured
// level.
func Init(ctx context.Context, logOut io.Writer, configPath, logLevel string) (context.Context, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	log, err := NewLogger(logOut, logLevel)
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, configKey{}, cfg)
	return logr.NewContext(ctx, log), nil
}

// configFrom returns the configuration stored by Init, or the defaults.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// NewLogger returns a logr.Logger writing colored text to w at level.
func NewLogger(w io.Writer, level string) (logr.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return logr.Discard(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:   lvl,
		NoColor: !isTerminal(w),
	})
	return logr.FromSlogHandler(handler), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// staticRegion reports a fixed region name.
type staticRegion string

func (r staticRegion) RegionName(context.Context) (string, error) {
	if r == "" {
		return "", fmt.Errorf("no region configured: set a Hetzner Cloud token or pass --region")
	}
	return string(r), nil
}

// newDefinition wires a template definition from cfg. The Hetzner Cloud
// client backs the region lookup when a token is configured.
func newDefinition(ctx context.Context, cfg *config.Config, region string) (*templatedef.Definition, error) {
	var cloud templatedef.CloudClient = staticRegion(region)
	if cfg.HCloud.Enabled() {
		client := hcloud.NewFromConfig(cfg.HCloud)
		cloud = client
		logr.FromContextOrDiscard(ctx).V(1).Info("Using Hetzner Cloud", "location", client.Location())
	}

	store, err := certmanager.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate store: %w", err)
	}

	return templatedef.New(cfg, cloud, volume.NewResolver(cfg.Cinder),
		templatedef.WithCertificateStore(store),
	), nil
}
