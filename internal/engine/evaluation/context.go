// Package evaluation provides the evaluation context handed to project evaluators.
//
// A Context owns one SDK resolver service and a sharing policy that decides whether the
// projects evaluated through it share that service's cache. Callers create one Context per
// snapshot of the environment and throw it away when installed SDKs, environment variables
// or disk contents may have changed. A Context is safe for concurrent use.
package evaluation

import (
	"sync/atomic"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/sdkres/internal/engine/sdkresolution"
	"go.trai.ch/zerr"
)

// Context scopes SDK resolution caching to a set of project evaluations.
type Context struct {
	policy  domain.SharingPolicy
	service *sdkresolution.Service
	opts    *options

	// issued flips once, when an isolated context is handed to its first project.
	issued atomic.Bool
}

type options struct {
	resolverPath string
	resolvers    []ports.SdkResolver
	onCreate     func(*Context)
}

// Option configures a Context at creation.
type Option func(*options)

// WithResolvers sets the resolver chain used by the context's service and by every context
// derived from it. Resolvers are shared between derived contexts and must be safe for
// concurrent use.
func WithResolvers(resolverPath string, resolvers ...ports.SdkResolver) Option {
	return func(o *options) {
		o.resolverPath = resolverPath
		o.resolvers = resolvers
	}
}

// WithCreateHook registers fn to run right after every context is constructed, including
// contexts derived by ContextForNewProject. It exists for test harnesses that need to
// swap internal state before a context is used.
func WithCreateHook(fn func(*Context)) Option {
	return func(o *options) {
		o.onCreate = fn
	}
}

// Create constructs a context with a fresh resolver service and an empty cache.
func Create(policy domain.SharingPolicy, opts ...Option) (*Context, error) {
	if !policy.Valid() {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSharingPolicy, "cannot create evaluation context"),
			"policy", int(policy))
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return create(policy, o), nil
}

func create(policy domain.SharingPolicy, o *options) *Context {
	c := &Context{
		policy:  policy,
		service: sdkresolution.NewServiceWithPath(o.resolverPath, o.resolvers),
		opts:    o,
	}
	if o.onCreate != nil {
		o.onCreate(c)
	}
	return c
}

// Policy returns the sharing policy the context was created with.
func (c *Context) Policy() domain.SharingPolicy {
	return c.policy
}

// SdkResolverService returns the resolver service owned by the context.
func (c *Context) SdkResolverService() *sdkresolution.Service {
	return c.service
}

// ContextForNewProject returns the context a newly evaluated project should use.
//
// Shared contexts always return themselves. Isolated contexts return themselves to exactly
// one caller, the first, and a new isolated context with an empty cache to every other.
func (c *Context) ContextForNewProject() *Context {
	switch c.policy {
	case domain.SharingPolicyShared:
		return c
	case domain.SharingPolicyIsolated:
		if c.issued.CompareAndSwap(false, true) {
			return c
		}
		return create(c.policy, c.opts)
	default:
		panic("evaluation: unreachable sharing policy " + c.policy.String())
	}
}
