package env_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkres/internal/adapters/resolvers/env"
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/sdkres/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func resolve(t *testing.T, r *env.Resolver, ref domain.SdkReference) *domain.Result {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockMessageLogger(ctrl)
	log.EXPECT().LogMessage(gomock.Any(), domain.ImportanceNormal).AnyTimes()

	res, err := r.Resolve(context.Background(), ref, ports.ResolverContext{Logger: log}, domain.NewResultFactory(ref, r.Name()))
	require.NoError(t, err)
	return res
}

func TestResolver_VariableName(t *testing.T) {
	r := env.New(0, "SDKRES_SDK_")
	assert.Equal(t, "SDKRES_SDK_MICROSOFT_NET_SDK", r.VariableName("Microsoft.NET.Sdk"))
	assert.Equal(t, "SDKRES_SDK_GO", r.VariableName("go"))
}

func TestResolver_Resolve(t *testing.T) {
	r := env.New(2000, "SDKRES_TEST_")
	sdkDir := t.TempDir()

	t.Run("unset variable has no opinion", func(t *testing.T) {
		res := resolve(t, r, domain.NewSdkReference("unset.sdk", ""))
		assert.Equal(t, domain.OutcomeNoOpinion, res.Outcome())
	})

	t.Run("existing directory succeeds", func(t *testing.T) {
		t.Setenv("SDKRES_TEST_MY_SDK", sdkDir)
		res := resolve(t, r, domain.NewSdkReference("My.Sdk", "2.0"))
		assert.True(t, res.Success())
		assert.Equal(t, sdkDir, res.Path())
		assert.Equal(t, "2.0", res.Version())
		assert.Equal(t, env.Name, res.ResolverName())
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Setenv("SDKRES_TEST_MY_SDK", filepath.Join(sdkDir, "missing"))
		res := resolve(t, r, domain.NewSdkReference("My.Sdk", ""))
		assert.Equal(t, domain.OutcomeFailure, res.Outcome())
		require.Len(t, res.Messages(), 1)
		assert.Contains(t, res.Messages()[0], "SDKRES_TEST_MY_SDK")
	})
}
