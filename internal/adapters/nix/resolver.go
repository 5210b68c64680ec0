package nix

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
)

// Name is the resolver name reported in results.
const Name = "nix"

// Resolver resolves versioned SDK references to realised Nix store paths.
type Resolver struct {
	priority int
	deps     ports.DependencyResolver
	packages ports.PackageManager
}

// NewResolver creates a nix resolver from a NixHub lookup and a package manager.
func NewResolver(priority int, deps ports.DependencyResolver, packages ports.PackageManager) *Resolver {
	return &Resolver{priority: priority, deps: deps, packages: packages}
}

// Name returns the resolver name.
func (r *Resolver) Name() string { return Name }

// Priority returns the resolver priority.
func (r *Resolver) Priority() int { return r.priority }

// Resolve looks the SDK up on NixHub and realises it. References without an exact
// version and packages unknown to NixHub yield no opinion. A nix build that ran and
// failed is a Failure; any other install error is returned as is.
func (r *Resolver) Resolve(
	ctx context.Context,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
	factory *domain.ResultFactory,
) (*domain.Result, error) {
	if ref.Version == "" {
		rctx.Logger.LogMessage(
			fmt.Sprintf("Skipping SDK %q: nix resolution needs an exact version", ref.Name),
			domain.ImportanceLow,
		)
		return factory.NoOpinion(), nil
	}

	alias := strings.ToLower(ref.Name)
	commitHash, attrPath, err := r.deps.Resolve(ctx, alias, ref.Version)
	if errors.Is(err, domain.ErrNixPackageNotFound) {
		rctx.Logger.LogMessage(
			fmt.Sprintf("NixHub has no package %s@%s", alias, ref.Version),
			domain.ImportanceLow,
		)
		return factory.NoOpinion(), nil
	}
	if err != nil {
		return nil, err
	}

	rctx.Logger.LogMessage(
		fmt.Sprintf("Realising %s from nixpkgs %s", attrPath, commitHash),
		domain.ImportanceNormal,
	)
	storePath, err := r.packages.Install(ctx, attrPath, commitHash)
	switch {
	case err == nil:
	case ctx.Err() == nil && errors.Is(err, domain.ErrNixBuildFailed):
		return factory.IndicateFailure(fmt.Sprintf("nix build of %s@%s failed: %v", alias, ref.Version, err)), nil
	default:
		// Cancellation and a missing or unusable nix are faults, so the outcome is not cached.
		return nil, err
	}

	return factory.IndicateSuccess(storePath, ref.Version), nil
}

var _ ports.SdkResolver = (*Resolver)(nil)
