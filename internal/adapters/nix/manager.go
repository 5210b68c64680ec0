package nix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the nix executable looked up on PATH.
const DefaultBinary = "nix"

// Manager implements ports.PackageManager using the Nix CLI.
type Manager struct {
	binary string
}

// NewManager creates a PackageManager backed by the nix CLI found on PATH.
func NewManager() *Manager {
	return &Manager{binary: DefaultBinary}
}

// NewManagerWithBinary creates a PackageManager invoking the given nix executable.
func NewManagerWithBinary(binary string) *Manager {
	return &Manager{binary: binary}
}

// Install realises attrPath from nixpkgs at commitHash and returns its store path.
func (m *Manager) Install(ctx context.Context, attrPath, commitHash string) (string, error) {
	flakeRef := fmt.Sprintf("github:NixOS/nixpkgs/%s#%s", commitHash, attrPath)

	//nolint:gosec // flakeRef is built from NixHub data.
	cmd := exec.CommandContext(ctx, m.binary, "build", "--json", "--no-link", flakeRef)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if ctx.Err() == nil && errors.As(err, &exitErr) {
			buildErr := zerr.With(fmt.Errorf("%w: %w: %w", domain.ErrNixInstallFailed, domain.ErrNixBuildFailed, err),
				"attr", attrPath)
			buildErr = zerr.With(buildErr, "commit", commitHash)
			return "", zerr.With(buildErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}

		nixErr := zerr.With(fmt.Errorf("%w: %w", domain.ErrNixInstallFailed, err), "attr", attrPath)
		return "", zerr.With(nixErr, "commit", commitHash)
	}

	return parseBuildResults(output, attrPath, commitHash)
}

func parseBuildResults(output []byte, attrPath, commitHash string) (string, error) {
	var results buildResults
	if err := json.Unmarshal(output, &results); err != nil {
		parseErr := zerr.With(zerr.Wrap(err, "failed to parse nix build JSON output"), "attr", attrPath)
		return "", zerr.With(parseErr, "commit", commitHash)
	}

	if len(results) == 0 {
		emptyErr := zerr.With(zerr.Wrap(domain.ErrNixInstallFailed, "empty build results from nix build"), "attr", attrPath)
		return "", zerr.With(emptyErr, "commit", commitHash)
	}

	storePath, ok := results[0].Outputs["out"]
	if !ok || storePath == "" {
		outErr := zerr.With(zerr.Wrap(domain.ErrNixInstallFailed, "no 'out' output found in build results"), "attr", attrPath)
		return "", zerr.With(outErr, "commit", commitHash)
	}

	return storePath, nil
}

var _ ports.PackageManager = (*Manager)(nil)
