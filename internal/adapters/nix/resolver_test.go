package nix_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkres/internal/adapters/nix"
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/sdkres/internal/core/ports/mocks"
	"go.trai.ch/sdkres/internal/engine/sdkresolution"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type resolverFixture struct {
	deps     *mocks.MockDependencyResolver
	packages *mocks.MockPackageManager
	rctx     ports.ResolverContext
	resolver *nix.Resolver
}

func newFixture(t *testing.T) *resolverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockMessageLogger(ctrl)
	log.EXPECT().LogMessage(gomock.Any(), gomock.Any()).AnyTimes()

	f := &resolverFixture{
		deps:     mocks.NewMockDependencyResolver(ctrl),
		packages: mocks.NewMockPackageManager(ctrl),
		rctx:     ports.ResolverContext{Logger: log},
	}
	f.resolver = nix.NewResolver(9000, f.deps, f.packages)
	return f
}

func (f *resolverFixture) resolve(t *testing.T, ref domain.SdkReference) (*domain.Result, error) {
	t.Helper()
	return f.resolver.Resolve(context.Background(), ref, f.rctx, domain.NewResultFactory(ref, nix.Name))
}

func TestResolver_Success(t *testing.T) {
	f := newFixture(t)
	f.deps.EXPECT().Resolve(gomock.Any(), "go", "1.22.0").Return("commit123", "go_1_22", nil)
	f.packages.EXPECT().Install(gomock.Any(), "go_1_22", "commit123").Return("/nix/store/abc-go-1.22.0", nil)

	res, err := f.resolve(t, domain.NewSdkReference("Go", "1.22.0"))
	require.NoError(t, err)
	require.True(t, res.Success())
	assert.Equal(t, "/nix/store/abc-go-1.22.0", res.Path())
	assert.Equal(t, "1.22.0", res.Version())
	assert.Equal(t, nix.Name, res.ResolverName())
}

func TestResolver_NoVersion(t *testing.T) {
	f := newFixture(t)

	res, err := f.resolve(t, domain.NewSdkReference("go", ""))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoOpinion, res.Outcome())
}

func TestResolver_PackageNotFound(t *testing.T) {
	f := newFixture(t)
	f.deps.EXPECT().Resolve(gomock.Any(), "zig", "9.9.9").
		Return("", "", zerr.With(zerr.Wrap(domain.ErrNixPackageNotFound, "nixhub returned 404"), "alias", "zig"))

	res, err := f.resolve(t, domain.NewSdkReference("zig", "9.9.9"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoOpinion, res.Outcome())
}

func TestResolver_LookupErrorIsReturned(t *testing.T) {
	f := newFixture(t)
	f.deps.EXPECT().Resolve(gomock.Any(), "go", "1.22.0").Return("", "", domain.ErrNixAPIRequestFailed)

	res, err := f.resolve(t, domain.NewSdkReference("go", "1.22.0"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNixAPIRequestFailed)
}

func TestResolver_InstallFailure(t *testing.T) {
	f := newFixture(t)
	f.deps.EXPECT().Resolve(gomock.Any(), "go", "1.22.0").Return("commit123", "go_1_22", nil)
	f.packages.EXPECT().Install(gomock.Any(), "go_1_22", "commit123").
		Return("", fmt.Errorf("%w: builder exited with status 1", domain.ErrNixBuildFailed))

	res, err := f.resolve(t, domain.NewSdkReference("go", "1.22.0"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, res.Outcome())
	require.Len(t, res.Messages(), 1)
	assert.Contains(t, res.Messages()[0], "builder exited with status 1")
}

func TestResolver_InstallErrorIsFault(t *testing.T) {
	f := newFixture(t)
	missing := errors.New("exec: \"nix\": executable file not found in $PATH")
	f.deps.EXPECT().Resolve(gomock.Any(), "go", "1.22.0").Return("commit123", "go_1_22", nil)
	f.packages.EXPECT().Install(gomock.Any(), "go_1_22", "commit123").
		Return("", fmt.Errorf("%w: %w", domain.ErrNixInstallFailed, missing))

	res, err := f.resolve(t, domain.NewSdkReference("go", "1.22.0"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, missing)
}

func TestResolver_CancelledBuildIsRetried(t *testing.T) {
	f := newFixture(t)
	f.deps.EXPECT().Resolve(gomock.Any(), "go", "1.22").Return("commit123", "go_1_22", nil).Times(2)
	gomock.InOrder(
		f.packages.EXPECT().Install(gomock.Any(), "go_1_22", "commit123").
			Return("", fmt.Errorf("%w: signal: killed", domain.ErrNixBuildFailed)),
		f.packages.EXPECT().Install(gomock.Any(), "go_1_22", "commit123").
			Return("/nix/store/abc-go-1.22", nil),
	)

	service := sdkresolution.NewService(f.resolver)
	ref := domain.NewSdkReference("go", "1.22")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := service.Resolve(ctx, ref, f.rctx)
	assert.Nil(t, res)
	require.Error(t, err)

	res, err = service.Resolve(context.Background(), ref, f.rctx)
	require.NoError(t, err)
	require.True(t, res.Success())
	assert.Equal(t, "/nix/store/abc-go-1.22", res.Path())
}
