package ports

import (
	"context"

	"go.trai.ch/sdkres/internal/core/domain"
)

// ResolverContext is the read-only information handed to each resolver invocation.
// It is built fresh for every resolution and never cached.
type ResolverContext struct {
	// ProjectFilePath is the project being evaluated when the reference was encountered.
	ProjectFilePath string
	// SolutionFilePath is the solution the project belongs to, if any.
	SolutionFilePath string
	// HostVersion is the version of the build engine requesting the SDK.
	HostVersion string
	// Logger receives diagnostic messages from resolvers. It is never nil when passed
	// to a resolver by the resolver service.
	Logger MessageLogger
}

// SdkResolver is a pluggable unit that attempts to resolve one SDK reference.
//
// Resolve must answer through the factory: IndicateSuccess, IndicateFailure or NoOpinion.
// A returned error is a resolver fault and aborts the resolution without caching it.
// Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SdkResolver interface {
	// Name identifies the resolver in results and diagnostics.
	Name() string
	// Priority orders the chain; lower values are attempted first.
	Priority() int
	// Resolve attempts to resolve ref.
	Resolve(
		ctx context.Context,
		ref domain.SdkReference,
		rctx ResolverContext,
		factory *domain.ResultFactory,
	) (*domain.Result, error)
}

// PathAwareResolver is implemented by resolvers that want the configuration root passed
// to the resolver service on initialization.
type PathAwareResolver interface {
	SdkResolver
	// SetResolverPath is called when the resolver joins a service chain, before that
	// service resolves anything.
	SetResolverPath(path string)
}

// ResolverProvider builds the default resolver chain from configuration.
type ResolverProvider interface {
	// Resolvers returns the enabled resolvers described by cfg, in registration order.
	Resolvers(cfg *domain.Config) ([]SdkResolver, error)
}
