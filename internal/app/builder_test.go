package app_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkres/internal/adapters/logger"
	"go.trai.ch/sdkres/internal/adapters/telemetry"
	"go.trai.ch/sdkres/internal/app"
	"go.trai.ch/sdkres/internal/core/ports/mocks"
	_ "go.trai.ch/sdkres/internal/wiring" // Register providers
	"go.uber.org/mock/gomock"
)

func TestAppWiring(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	defer func() {
		errChdir := os.Chdir(cwd)
		require.NoError(t, errChdir)
	}()

	tmpDir := t.TempDir()
	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)

	list, err := components.App.Resolvers("")
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, r := range list {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"manifest", "env", "directory"}, names)
}

func TestApp_ConfigureLogging(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	ctrl := gomock.NewController(t)
	a := app.New(mocks.NewMockConfigLoader(ctrl), mocks.NewMockResolverProvider(ctrl), lg, telemetry.NewNoOpTracer())

	a.ConfigureLogging(true, true)
	lg.Debug("diagnostic")
	assert.Contains(t, buf.String(), `"msg":"diagnostic"`)
}
