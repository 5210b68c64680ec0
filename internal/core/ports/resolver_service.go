package ports

import (
	"context"

	"go.trai.ch/sdkres/internal/core/domain"
)

// SdkResolverService resolves SDK references on behalf of a project evaluator.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver_service.go -destination=mocks/mock_resolver_service.go -package=mocks
type SdkResolverService interface {
	// Resolve returns the result for ref. A resolution failure is a result, not an error;
	// errors are reserved for resolver faults and contract violations.
	Resolve(ctx context.Context, ref domain.SdkReference, rctx ResolverContext) (*domain.Result, error)
}
