// Package resolvers assembles the built-in SDK resolvers from configuration.
package resolvers

import (
	"go.trai.ch/sdkres/internal/adapters/nix"
	"go.trai.ch/sdkres/internal/adapters/resolvers/directory"
	"go.trai.ch/sdkres/internal/adapters/resolvers/env"
	"go.trai.ch/sdkres/internal/adapters/resolvers/manifest"
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.ResolverProvider for the built-in resolvers.
type Provider struct {
	packages ports.PackageManager
	hubOpts  []nix.HubOption
}

// NewProvider creates a Provider. The package manager is only used when the nix
// resolver is enabled.
func NewProvider(packages ports.PackageManager, hubOpts ...nix.HubOption) *Provider {
	return &Provider{packages: packages, hubOpts: hubOpts}
}

// Resolvers returns the enabled resolvers in configuration order. The resolver
// service sorts them by priority.
func (p *Provider) Resolvers(cfg *domain.Config) ([]ports.SdkResolver, error) {
	if cfg == nil {
		return nil, zerr.Wrap(domain.ErrInvalidResolverConfig, "missing configuration")
	}

	var out []ports.SdkResolver
	if cfg.Manifest.Enabled {
		out = append(out, manifest.New(cfg.Manifest.Priority, cfg.Manifest.Sdks))
	}
	if cfg.Env.Enabled {
		out = append(out, env.New(cfg.Env.Priority, cfg.Env.Prefix))
	}
	if cfg.Directory.Enabled {
		out = append(out, directory.New(cfg.Directory.Priority, cfg.Directory.Roots))
	}
	if cfg.Nix.Enabled {
		if p.packages == nil {
			return nil, zerr.Wrap(domain.ErrInvalidResolverConfig, "nix resolver enabled without a package manager")
		}
		hub, err := nix.NewHubClient(cfg.Nix.CacheDir, p.hubOpts...)
		if err != nil {
			return nil, err
		}
		out = append(out, nix.NewResolver(cfg.Nix.Priority, hub, p.packages))
	}
	return out, nil
}

var _ ports.ResolverProvider = (*Provider)(nil)
