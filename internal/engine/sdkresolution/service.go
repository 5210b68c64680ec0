// Package sdkresolution implements the caching SDK resolver service: an ordered chain of
// resolvers whose outcomes are cached for the lifetime of the service.
package sdkresolution

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Service resolves SDK references through a priority-ordered resolver chain and caches
// every concrete outcome, including the failure synthesized when the chain is exhausted.
//
// For a given key the chain is walked at most once per successful or failed resolution;
// resolver faults are not cached and the next call walks the chain again.
type Service struct {
	// mu guards resolvers and resolverPath. It is never held while a resolver runs.
	mu           sync.RWMutex
	resolvers    []ports.SdkResolver
	resolverPath string

	started atomic.Bool
	cache   sync.Map // domain.SdkKey -> *domain.Result
	flight  singleflight.Group
}

// NewService creates a service over resolvers. The chain is ordered once, here, by ascending
// priority with ties kept in registration order.
func NewService(resolvers ...ports.SdkResolver) *Service {
	return NewServiceWithPath("", resolvers)
}

// NewServiceWithPath creates a service whose resolvers receive resolverPath as their
// configuration root.
func NewServiceWithPath(resolverPath string, resolvers []ports.SdkResolver) *Service {
	s := &Service{
		resolverPath: resolverPath,
		resolvers:    sortResolvers(resolvers),
	}
	s.announcePath()
	return s
}

// Initialize replaces the resolver chain wholesale and records the configuration root.
// Resolvers implementing ports.PathAwareResolver receive resolverPath.
//
// It returns domain.ErrServiceAlreadyResolving once the service has begun resolving,
// because replacing the chain would leave cached results inconsistent with it.
func (s *Service) Initialize(resolverPath string, resolvers []ports.SdkResolver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.Load() {
		return zerr.With(zerr.Wrap(domain.ErrServiceAlreadyResolving, "initialize rejected"),
			"resolver_path", resolverPath)
	}

	s.resolverPath = resolverPath
	s.resolvers = sortResolvers(resolvers)
	s.announcePath()
	return nil
}

func (s *Service) announcePath() {
	if s.resolverPath == "" {
		return
	}
	for _, r := range s.resolvers {
		if aware, ok := r.(ports.PathAwareResolver); ok {
			aware.SetResolverPath(s.resolverPath)
		}
	}
}

// ResolverPath returns the configuration root passed to Initialize.
func (s *Service) ResolverPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolverPath
}

// Resolvers returns the chain in the order it is walked.
func (s *Service) Resolvers() []ports.SdkResolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.resolvers)
}

// Resolve returns the cached result for ref or walks the resolver chain to produce one.
//
// Concurrent callers for the same key share one chain walk and receive the same *Result.
// A resolution failure is returned as a Failure result with a nil error. The context is
// passed to the resolvers; when it cancels a walk shared with other callers, those
// callers walk the chain again with their own context.
func (s *Service) Resolve(ctx context.Context, ref domain.SdkReference, rctx ports.ResolverContext) (*domain.Result, error) {
	if err := ref.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid sdk reference"), "reference", ref.String())
	}

	key := ref.Key()
	if cached, ok := s.cache.Load(key); ok {
		return cached.(*domain.Result), nil
	}

	chain := s.beginResolving()

	for {
		led := false
		v, err, _ := s.flight.Do(key.String(), func() (any, error) {
			led = true
			// A walk for this key may have completed between the Load above and Do.
			if cached, ok := s.cache.Load(key); ok {
				return cached, nil
			}

			result, err := s.walk(ctx, chain, ref, rctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil, &cancelledWalk{err: err}
				}
				return nil, err
			}

			actual, _ := s.cache.LoadOrStore(key, result)
			return actual, nil
		})
		var cancelled *cancelledWalk
		if errors.As(err, &cancelled) {
			// The walk ran under another caller's context, which was cancelled.
			if !led && ctx.Err() == nil {
				continue
			}
			return nil, cancelled.err
		}
		if err != nil {
			return nil, err
		}

		return v.(*domain.Result), nil
	}
}

// cancelledWalk marks a fault raised while the walking caller's context was done.
type cancelledWalk struct {
	err error
}

func (e *cancelledWalk) Error() string { return e.err.Error() }

func (e *cancelledWalk) Unwrap() error { return e.err }

// beginResolving marks the service as started and returns a snapshot of the chain.
func (s *Service) beginResolving() []ports.SdkResolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.started.Store(true)
	return s.resolvers
}

func (s *Service) walk(
	ctx context.Context,
	chain []ports.SdkResolver,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
) (*domain.Result, error) {
	if rctx.Logger == nil {
		rctx.Logger = nopMessageLogger{}
	}

	consulted := make([]string, 0, len(chain))
	for _, resolver := range chain {
		name := resolver.Name()
		consulted = append(consulted, name)
		rctx.Logger.LogMessage(
			fmt.Sprintf("Attempting to resolve SDK %q with resolver %q", ref.String(), name),
			domain.ImportanceLow,
		)

		result, err := invoke(ctx, resolver, ref, rctx, domain.NewResultFactory(ref, name))
		if err != nil {
			return nil, err
		}

		switch result.Outcome() {
		case domain.OutcomeSuccess:
			for _, warning := range result.Warnings() {
				rctx.Logger.LogWarning(warning)
			}
			return result, nil
		case domain.OutcomeFailure:
			return result, nil
		case domain.OutcomeNoOpinion:
			continue
		}
	}

	return domain.NewUnresolvedResult(ref, consulted), nil
}

// invoke runs a single resolver, turning panics and nil results into resolver faults.
func invoke(
	ctx context.Context,
	resolver ports.SdkResolver,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
	factory *domain.ResultFactory,
) (result *domain.Result, err error) {
	defer zerr.Defer(func(panicErr error) {
		result = nil
		err = zerr.With(zerr.With(fmt.Errorf("%w: %w", domain.ErrResolverFault, panicErr),
			"resolver", resolver.Name()),
			"reference", ref.String())
	})

	result, err = resolver.Resolve(ctx, ref, rctx, factory)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "sdk resolver returned an error"),
			"resolver", resolver.Name()),
			"reference", ref.String())
	}
	if result == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNilResolverResult, "sdk resolver contract violated"),
			"resolver", resolver.Name())
	}
	return result, nil
}

func sortResolvers(resolvers []ports.SdkResolver) []ports.SdkResolver {
	sorted := slices.Clone(resolvers)
	slices.SortStableFunc(sorted, func(a, b ports.SdkResolver) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return sorted
}

type nopMessageLogger struct{}

func (nopMessageLogger) LogMessage(string, domain.MessageImportance) {}

func (nopMessageLogger) LogWarning(string) {}

var _ ports.SdkResolverService = (*Service)(nil)
