package ports

import "context"

// DependencyResolver handles resolving a tool version to a specific Nixpkgs commit.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type DependencyResolver interface {
	// Resolve resolves a package identifier (e.g., "go@1.21") to a Nixpkgs commit hash and
	// attribute path. It should check the cache first, then query the NixHub API.
	Resolve(ctx context.Context, alias, version string) (commitHash, attrPath string, err error)
}

// PackageManager handles the fetching and preparation of tools.
type PackageManager interface {
	// Install ensures the attribute from the specific commit is available in the Nix store.
	// Returns the absolute path to the realised store path.
	Install(ctx context.Context, attrPath, commitHash string) (storePath string, err error)
}
