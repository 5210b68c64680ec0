// Package manifest implements an SDK resolver backed by an explicit name-to-path map,
// usually taken from the manifest section of sdkres.yaml.
package manifest

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
)

// Name is the resolver name reported in results.
const Name = "manifest"

type entry struct {
	path    string
	version string
}

// Resolver resolves references listed in a manifest and has no opinion on anything else.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	priority int
	// entries is keyed by the lower-cased name, then by version ("" for unversioned).
	entries map[string]map[string]entry
}

// New creates a resolver from keys of the form "name" or "name@version".
func New(priority int, sdks map[string]string) *Resolver {
	r := &Resolver{
		priority: priority,
		entries:  make(map[string]map[string]entry, len(sdks)),
	}
	for key, path := range sdks {
		name, version, _ := strings.Cut(key, "@")
		name = strings.ToLower(strings.TrimSpace(name))
		version = strings.TrimSpace(version)

		if r.entries[name] == nil {
			r.entries[name] = map[string]entry{}
		}
		r.entries[name][version] = entry{path: path, version: version}
	}
	return r
}

// Name returns the resolver name.
func (r *Resolver) Name() string { return Name }

// Priority returns the resolver priority.
func (r *Resolver) Priority() int { return r.priority }

// Resolve looks ref up by exact version first, then by name alone.
func (r *Resolver) Resolve(
	_ context.Context,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
	factory *domain.ResultFactory,
) (*domain.Result, error) {
	rctx.Logger.LogMessage(fmt.Sprintf("ProjectFilePath = %s", rctx.ProjectFilePath), domain.ImportanceLow)
	rctx.Logger.LogMessage(fmt.Sprintf("SolutionFilePath = %s", rctx.SolutionFilePath), domain.ImportanceLow)
	rctx.Logger.LogMessage(fmt.Sprintf("HostVersion = %s", rctx.HostVersion), domain.ImportanceLow)

	versions, ok := r.entries[strings.ToLower(ref.Name)]
	if !ok {
		return factory.NoOpinion(), nil
	}

	if ref.Version != "" {
		if e, ok := versions[ref.Version]; ok {
			return factory.IndicateSuccess(e.path, e.version), nil
		}
	}

	e, ok := versions[""]
	if !ok {
		return factory.NoOpinion(), nil
	}
	return factory.IndicateSuccess(e.path, ref.Version), nil
}

var _ ports.SdkResolver = (*Resolver)(nil)
