package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkres/internal/core/ports"
)

// PackageManagerNodeID is the graft node providing the nix package manager.
const PackageManagerNodeID graft.ID = "adapter.nix.package_manager"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        PackageManagerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageManager, error) {
			return NewManager(), nil
		},
	})
}
