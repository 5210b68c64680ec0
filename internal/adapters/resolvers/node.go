package resolvers

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkres/internal/adapters/nix"
	"go.trai.ch/sdkres/internal/core/ports"
)

// NodeID is the unique identifier for the resolver provider Graft node.
const NodeID graft.ID = "adapter.resolvers.provider"

func init() {
	graft.Register(graft.Node[ports.ResolverProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{nix.PackageManagerNodeID},
		Run: func(ctx context.Context) (ports.ResolverProvider, error) {
			packages, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(packages), nil
		},
	})
}
