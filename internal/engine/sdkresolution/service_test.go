package sdkresolution_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/sdkres/internal/core/ports/mocks"
	"go.trai.ch/sdkres/internal/engine/sdkresolution"
	"go.uber.org/mock/gomock"
)

// countingResolver resolves names from a fixed map and counts invocations per name.
type countingResolver struct {
	name     string
	priority int
	paths    map[string]string
	calls    sync.Map // string -> *atomic.Int64
	release  chan struct{}
}

func (r *countingResolver) Name() string  { return r.name }
func (r *countingResolver) Priority() int { return r.priority }

func (r *countingResolver) Resolve(
	_ context.Context,
	ref domain.SdkReference,
	_ ports.ResolverContext,
	factory *domain.ResultFactory,
) (*domain.Result, error) {
	counter, _ := r.calls.LoadOrStore(ref.Name, new(atomic.Int64))
	counter.(*atomic.Int64).Add(1)

	if r.release != nil {
		<-r.release
	}

	path, ok := r.paths[ref.Name]
	if !ok {
		return factory.NoOpinion(), nil
	}
	return factory.IndicateSuccess(path, ref.Version), nil
}

func (r *countingResolver) Calls(name string) int64 {
	counter, ok := r.calls.Load(name)
	if !ok {
		return 0
	}
	return counter.(*atomic.Int64).Load()
}

func newMockResolver(ctrl *gomock.Controller, name string, priority int) *mocks.MockSdkResolver {
	r := mocks.NewMockSdkResolver(ctrl)
	r.EXPECT().Name().Return(name).AnyTimes()
	r.EXPECT().Priority().Return(priority).AnyTimes()
	return r
}

func TestService_Resolve_CachesResult(t *testing.T) {
	resolver := &countingResolver{name: "counting", paths: map[string]string{"go": "/opt/go"}}
	svc := sdkresolution.NewService(resolver)
	ref := domain.NewSdkReference("go", "1.22")

	first, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.Success())
	assert.Equal(t, "/opt/go", first.Path())
	assert.Equal(t, "counting", first.ResolverName())
	assert.Equal(t, int64(1), resolver.Calls("go"))
}

func TestService_Resolve_KeyIgnoresNameCase(t *testing.T) {
	resolver := &countingResolver{name: "counting", paths: map[string]string{"Microsoft.NET.Sdk": "/sdk"}}
	svc := sdkresolution.NewService(resolver)

	first, err := svc.Resolve(context.Background(), domain.NewSdkReference("Microsoft.NET.Sdk", ""), ports.ResolverContext{})
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), domain.NewSdkReference("microsoft.net.sdk", ""), ports.ResolverContext{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), resolver.Calls("Microsoft.NET.Sdk"))
	assert.Zero(t, resolver.Calls("microsoft.net.sdk"))
}

func TestService_Resolve_VersionIsPartOfKey(t *testing.T) {
	resolver := &countingResolver{name: "counting", paths: map[string]string{"go": "/opt/go"}}
	svc := sdkresolution.NewService(resolver)

	a, err := svc.Resolve(context.Background(), domain.NewSdkReference("go", "1.21"), ports.ResolverContext{})
	require.NoError(t, err)
	b, err := svc.Resolve(context.Background(), domain.NewSdkReference("go", "1.22"), ports.ResolverContext{})
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, "1.21", a.Version())
	assert.Equal(t, "1.22", b.Version())
	assert.Equal(t, int64(2), resolver.Calls("go"))
}

func TestService_Resolve_PriorityOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)

	r10 := newMockResolver(ctrl, "ten", 10)
	r5 := newMockResolver(ctrl, "five", 5)
	r20 := newMockResolver(ctrl, "twenty", 20)

	r5.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
			return f.IndicateSuccess("/five", ""), nil
		}).Times(1)
	// ten and twenty have no Resolve expectation: any call fails the test.

	svc := sdkresolution.NewService(r10, r5, r20)

	for range 3 {
		res, err := svc.Resolve(context.Background(), domain.NewSdkReference("sdk", ""), ports.ResolverContext{})
		require.NoError(t, err)
		assert.Equal(t, "/five", res.Path())
		assert.Equal(t, "five", res.ResolverName())
	}
}

func TestService_Resolve_WalksInAscendingPriorityWithStableTies(t *testing.T) {
	var order []string
	record := func(name string) func(context.Context, domain.SdkReference, ports.ResolverContext, *domain.ResultFactory) (*domain.Result, error) {
		return func(_ context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
			order = append(order, name)
			return f.NoOpinion(), nil
		}
	}

	ctrl := gomock.NewController(t)
	resolvers := []ports.SdkResolver{}
	for _, spec := range []struct {
		name     string
		priority int
	}{{"c", 20}, {"a1", 5}, {"b", 10}, {"a2", 5}, {"min", -1 << 62}} {
		r := newMockResolver(ctrl, spec.name, spec.priority)
		r.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(record(spec.name))
		resolvers = append(resolvers, r)
	}

	svc := sdkresolution.NewService(resolvers...)
	res, err := svc.Resolve(context.Background(), domain.NewSdkReference("sdk", ""), ports.ResolverContext{})
	require.NoError(t, err)

	assert.Equal(t, []string{"min", "a1", "a2", "b", "c"}, order)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome())

	names := make([]string, 0, len(resolvers))
	for _, r := range svc.Resolvers() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"min", "a1", "a2", "b", "c"}, names)
}

func TestService_Resolve_FailureStopsChain(t *testing.T) {
	ctrl := gomock.NewController(t)

	first := newMockResolver(ctrl, "first", 1)
	second := newMockResolver(ctrl, "second", 2)

	first.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
			return f.IndicateFailure("sdk is corrupt"), nil
		}).Times(1)

	svc := sdkresolution.NewService(first, second)
	ref := domain.NewSdkReference("sdk", "")

	res, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome())
	assert.Equal(t, []string{"sdk is corrupt"}, res.Messages())

	again, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)
	assert.Same(t, res, again)
}

func TestService_Resolve_UnresolvableIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := newMockResolver(ctrl, "a", 1)
	b := newMockResolver(ctrl, "b", 2)
	noOpinion := func(_ context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
		return f.NoOpinion(), nil
	}
	a.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(noOpinion).Times(1)
	b.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(noOpinion).Times(1)

	svc := sdkresolution.NewService(a, b)
	ref := domain.NewSdkReference("missing", "")

	res, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome())
	require.NotEmpty(t, res.Messages())
	assert.Contains(t, res.Messages()[0], "missing")
	assert.Empty(t, res.ResolverName())

	again, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)
	assert.Same(t, res, again)
}

func TestService_Resolve_EmptyChain(t *testing.T) {
	svc := sdkresolution.NewService()

	res, err := svc.Resolve(context.Background(), domain.NewSdkReference("go", ""), ports.ResolverContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome())
	assert.NotEmpty(t, res.Messages())
}

func TestService_Resolve_FaultIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	flaky := newMockResolver(ctrl, "flaky", 1)

	ioErr := errors.New("disk on fire")
	gomock.InOrder(
		flaky.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ioErr),
		flaky.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
				return f.IndicateSuccess("/sdk", ""), nil
			}),
	)

	svc := sdkresolution.NewService(flaky)
	ref := domain.NewSdkReference("sdk", "")

	_, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.ErrorIs(t, err, ioErr)

	res, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.NoError(t, err)
	assert.Equal(t, "/sdk", res.Path())
}

func TestService_Resolve_PanicBecomesFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	broken := newMockResolver(ctrl, "broken", 1)
	broken.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.SdkReference, ports.ResolverContext, *domain.ResultFactory) (*domain.Result, error) {
			panic("boom")
		}).Times(2)

	svc := sdkresolution.NewService(broken)
	ref := domain.NewSdkReference("sdk", "")

	_, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.ErrorIs(t, err, domain.ErrResolverFault)
	assert.Contains(t, err.Error(), "boom")

	_, err = svc.Resolve(context.Background(), ref, ports.ResolverContext{})
	require.ErrorIs(t, err, domain.ErrResolverFault)
}

func TestService_Resolve_NilResultIsContractViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	lazy := newMockResolver(ctrl, "lazy", 1)
	lazy.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := sdkresolution.NewService(lazy)

	_, err := svc.Resolve(context.Background(), domain.NewSdkReference("sdk", ""), ports.ResolverContext{})
	require.ErrorIs(t, err, domain.ErrNilResolverResult)
}

func TestService_Resolve_EmptyName(t *testing.T) {
	svc := sdkresolution.NewService()

	_, err := svc.Resolve(context.Background(), domain.NewSdkReference("", "1.0"), ports.ResolverContext{})
	require.ErrorIs(t, err, domain.ErrEmptySdkName)

	// A rejected reference does not start the service.
	require.NoError(t, svc.Initialize("", nil))
}

func TestService_Resolve_ForwardsWarningsOnlyOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := newMockResolver(ctrl, "warn", 1)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.SdkReference, rctx ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
			rctx.Logger.LogMessage("ProjectFilePath = "+rctx.ProjectFilePath, domain.ImportanceHigh)
			return f.IndicateSuccess("/sdk", "1.0", "version 1.0 is deprecated"), nil
		}).Times(1)

	svc := sdkresolution.NewService(resolver)
	ref := domain.NewSdkReference("sdk", "")

	missLogger := mocks.NewMockMessageLogger(ctrl)
	missLogger.EXPECT().LogMessage(gomock.Any(), domain.ImportanceLow).AnyTimes()
	missLogger.EXPECT().LogMessage("ProjectFilePath = app.proj", domain.ImportanceHigh).Times(1)
	missLogger.EXPECT().LogWarning("version 1.0 is deprecated").Times(1)

	_, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{ProjectFilePath: "app.proj", Logger: missLogger})
	require.NoError(t, err)

	// No expectations: a cache hit must not log anything.
	hitLogger := mocks.NewMockMessageLogger(ctrl)
	res, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{ProjectFilePath: "app.proj", Logger: hitLogger})
	require.NoError(t, err)
	assert.Equal(t, []string{"version 1.0 is deprecated"}, res.Warnings())
}

func TestService_Resolve_ConcurrentCallersConverge(t *testing.T) {
	const callers = 64

	release := make(chan struct{})
	resolver := &countingResolver{name: "slow", paths: map[string]string{"go": "/opt/go"}, release: release}
	svc := sdkresolution.NewService(resolver)
	ref := domain.NewSdkReference("go", "1.22")

	results := make([]*domain.Result, callers)
	errs := make([]error, callers)

	var ready, done sync.WaitGroup
	ready.Add(callers)
	done.Add(callers)
	for i := range callers {
		go func() {
			defer done.Done()
			ready.Done()
			results[i], errs[i] = svc.Resolve(context.Background(), ref, ports.ResolverContext{})
		}()
	}

	ready.Wait()
	close(release)
	done.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, int64(1), resolver.Calls("go"))
}

func TestService_Resolve_LeaderCancellationDoesNotFailFollowers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := newMockResolver(ctrl, "remote", 1)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
				if ctx.Done() == nil {
					return f.IndicateSuccess("/sdk", ""), nil
				}
				<-ctx.Done()
				return nil, ctx.Err()
			}).Times(2)

		svc := sdkresolution.NewService(resolver)
		ref := domain.NewSdkReference("sdk", "")

		leaderCtx, cancel := context.WithCancel(context.Background())
		leaderErr := make(chan error, 1)
		go func() {
			_, err := svc.Resolve(leaderCtx, ref, ports.ResolverContext{})
			leaderErr <- err
		}()
		synctest.Wait()

		type outcome struct {
			res *domain.Result
			err error
		}
		follower := make(chan outcome, 1)
		go func() {
			res, err := svc.Resolve(context.Background(), ref, ports.ResolverContext{})
			follower <- outcome{res: res, err: err}
		}()
		synctest.Wait()

		cancel()
		assert.ErrorIs(t, <-leaderErr, context.Canceled)

		got := <-follower
		require.NoError(t, got.err)
		assert.Equal(t, "/sdk", got.res.Path())
	})
}

func TestService_Resolve_SlowKeyDoesNotBlockOtherKeys(t *testing.T) {
	ctrl := gomock.NewController(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	resolver := newMockResolver(ctrl, "mixed", 1)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
			if ref.Name == "slow" {
				close(entered)
				<-release
			}
			return f.IndicateSuccess("/"+ref.Name, ""), nil
		}).Times(2)

	svc := sdkresolution.NewService(resolver)

	slowDone := make(chan *domain.Result)
	go func() {
		res, _ := svc.Resolve(context.Background(), domain.NewSdkReference("slow", ""), ports.ResolverContext{})
		slowDone <- res
	}()
	<-entered

	fast, err := svc.Resolve(context.Background(), domain.NewSdkReference("fast", ""), ports.ResolverContext{})
	require.NoError(t, err)
	assert.Equal(t, "/fast", fast.Path())

	close(release)
	assert.Equal(t, "/slow", (<-slowDone).Path())
}

func TestService_Initialize(t *testing.T) {
	t.Run("replaces the chain and passes the resolver path", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		original := newMockResolver(ctrl, "original", 1)
		replacement := mocks.NewMockPathAwareResolver(ctrl)
		replacement.EXPECT().Name().Return("replacement").AnyTimes()
		replacement.EXPECT().Priority().Return(1).AnyTimes()
		replacement.EXPECT().SetResolverPath("/etc/sdkres").Times(1)
		replacement.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.SdkReference, _ ports.ResolverContext, f *domain.ResultFactory) (*domain.Result, error) {
				return f.IndicateSuccess("/replaced", ""), nil
			})

		svc := sdkresolution.NewService(original)
		require.NoError(t, svc.Initialize("/etc/sdkres", []ports.SdkResolver{replacement}))
		assert.Equal(t, "/etc/sdkres", svc.ResolverPath())

		res, err := svc.Resolve(context.Background(), domain.NewSdkReference("sdk", ""), ports.ResolverContext{})
		require.NoError(t, err)
		assert.Equal(t, "replacement", res.ResolverName())
	})

	t.Run("fails fast once resolution has begun", func(t *testing.T) {
		resolver := &countingResolver{name: "counting", paths: map[string]string{"go": "/opt/go"}}
		svc := sdkresolution.NewService(resolver)

		_, err := svc.Resolve(context.Background(), domain.NewSdkReference("go", ""), ports.ResolverContext{})
		require.NoError(t, err)

		err = svc.Initialize("", []ports.SdkResolver{&countingResolver{name: "other"}})
		require.ErrorIs(t, err, domain.ErrServiceAlreadyResolving)

		names := []string{}
		for _, r := range svc.Resolvers() {
			names = append(names, r.Name())
		}
		assert.Equal(t, []string{"counting"}, names)
	})
}
