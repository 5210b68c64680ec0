package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkres/internal/core/domain"
)

func TestParseSdkReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.SdkReference
	}{
		{"name only", "Microsoft.NET.Sdk", domain.SdkReference{Name: "Microsoft.NET.Sdk"}},
		{"exact version", "go@1.22.1", domain.SdkReference{Name: "go", Version: "1.22.1"}},
		{"minimum version", "go@>=1.21", domain.SdkReference{Name: "go", MinimumVersion: "1.21"}},
		{"surrounding spaces", "  node @ 20 ", domain.SdkReference{Name: "node", Version: "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSdkReference(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSdkReference_Invalid(t *testing.T) {
	_, err := domain.ParseSdkReference("")
	require.ErrorIs(t, err, domain.ErrEmptySdkName)

	_, err = domain.ParseSdkReference("@1.0")
	require.ErrorIs(t, err, domain.ErrEmptySdkName)

	_, err = domain.ParseSdkReference("go@")
	require.ErrorIs(t, err, domain.ErrInvalidSdkReference)

	_, err = domain.ParseSdkReference("go@>=")
	require.ErrorIs(t, err, domain.ErrInvalidSdkReference)
}

func TestSdkReference_Key(t *testing.T) {
	a := domain.NewSdkReference("Microsoft.NET.Sdk", "")
	b := domain.NewSdkReference("microsoft.net.sdk", "")
	assert.Equal(t, a.Key(), b.Key(), "keys ignore name case")

	v1 := domain.NewSdkReference("go", "1.21")
	v2 := domain.NewSdkReference("go", "1.22")
	assert.NotEqual(t, v1.Key(), v2.Key(), "keys include the version")

	minimum := domain.SdkReference{Name: "go", MinimumVersion: "1.21"}
	assert.NotEqual(t, v1.Key(), minimum.Key())
	assert.Equal(t, "go@>=1.21", minimum.Key().String())
	assert.Empty(t, domain.SdkKey{}.String())
}

func TestSdkReference_StringRoundTrip(t *testing.T) {
	for _, s := range []string{"go", "go@1.22", "go@>=1.21"} {
		ref, err := domain.ParseSdkReference(s)
		require.NoError(t, err)
		assert.Equal(t, s, ref.String())
	}
}

func TestSdkReference_Validate(t *testing.T) {
	require.NoError(t, domain.NewSdkReference("go", "").Validate())
	require.ErrorIs(t, domain.NewSdkReference(" ", "").Validate(), domain.ErrEmptySdkName)
}
