// Package directory implements an SDK resolver that probes versioned directory trees laid
// out as <root>/<sdk name>/<version>.
package directory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"golang.org/x/mod/semver"
)

// Name is the resolver name reported in results.
const Name = "directory"

// DefaultSubdir is probed under the resolver path when no roots are configured.
const DefaultSubdir = "sdks"

// Resolver selects the exact requested version, or the highest semantic version that
// satisfies the minimum version when no exact version is requested.
type Resolver struct {
	priority int

	mu    sync.RWMutex
	roots []string
}

// New creates a resolver probing roots in order.
func New(priority int, roots []string) *Resolver {
	return &Resolver{priority: priority, roots: slices.Clone(roots)}
}

// Name returns the resolver name.
func (r *Resolver) Name() string { return Name }

// Priority returns the resolver priority.
func (r *Resolver) Priority() int { return r.priority }

// SetResolverPath makes <path>/sdks the probed root when no roots were configured.
func (r *Resolver) SetResolverPath(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.roots) == 0 && path != "" {
		r.roots = []string{filepath.Join(path, DefaultSubdir)}
	}
}

// Roots returns the probed roots.
func (r *Resolver) Roots() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.roots)
}

// Resolve probes every root for ref.
func (r *Resolver) Resolve(
	_ context.Context,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
	factory *domain.ResultFactory,
) (*domain.Result, error) {
	roots := r.Roots()

	if ref.Version != "" {
		for _, root := range roots {
			candidate := filepath.Join(root, ref.Name, ref.Version)
			if isDir(candidate) {
				return factory.IndicateSuccess(candidate, ref.Version), nil
			}
		}
		return factory.NoOpinion(), nil
	}

	var (
		bestPath    string
		bestVersion string
		rejected    []string
	)
	for _, root := range roots {
		sdkDir := filepath.Join(root, ref.Name)
		for _, version := range listVersions(sdkDir) {
			if ref.MinimumVersion != "" && compare(version, ref.MinimumVersion) < 0 {
				rejected = append(rejected, version)
				continue
			}
			if bestVersion == "" || compare(version, bestVersion) > 0 {
				bestVersion = version
				bestPath = filepath.Join(sdkDir, version)
			}
		}
	}

	if bestVersion != "" {
		rctx.Logger.LogMessage(
			fmt.Sprintf("Selected version %s of SDK %q from %s", bestVersion, ref.Name, bestPath),
			domain.ImportanceNormal,
		)
		return factory.IndicateSuccess(bestPath, bestVersion), nil
	}

	if len(rejected) > 0 {
		return factory.IndicateFailure(fmt.Sprintf(
			"SDK %q requires version %s or newer, found only %s",
			ref.Name, ref.MinimumVersion, strings.Join(rejected, ", "),
		)), nil
	}

	return factory.NoOpinion(), nil
}

// listVersions returns the subdirectories of dir whose names are semantic versions.
func listVersions(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && semver.IsValid(canonical(e.Name())) {
			versions = append(versions, e.Name())
		}
	}
	return versions
}

func compare(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

func canonical(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var _ ports.PathAwareResolver = (*Resolver)(nil)
