// Package env implements an SDK resolver that reads SDK locations from environment variables.
package env

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
)

// Name is the resolver name reported in results.
const Name = "env"

// Resolver maps an SDK named "Microsoft.NET.Sdk" to the variable <prefix>MICROSOFT_NET_SDK.
type Resolver struct {
	priority int
	prefix   string
}

// New creates a resolver reading variables with the given prefix.
func New(priority int, prefix string) *Resolver {
	return &Resolver{priority: priority, prefix: prefix}
}

// Name returns the resolver name.
func (r *Resolver) Name() string { return Name }

// Priority returns the resolver priority.
func (r *Resolver) Priority() int { return r.priority }

// VariableName returns the environment variable consulted for an SDK name.
func (r *Resolver) VariableName(sdkName string) string {
	var b strings.Builder
	b.WriteString(r.prefix)
	for _, c := range strings.ToUpper(sdkName) {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Resolve has no opinion when the variable is unset. A variable pointing at a missing
// directory is a failure, since the user explicitly chose that location.
func (r *Resolver) Resolve(
	_ context.Context,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
	factory *domain.ResultFactory,
) (*domain.Result, error) {
	variable := r.VariableName(ref.Name)
	path, ok := os.LookupEnv(variable)
	if !ok || strings.TrimSpace(path) == "" {
		return factory.NoOpinion(), nil
	}

	rctx.Logger.LogMessage(fmt.Sprintf("%s = %s", variable, path), domain.ImportanceNormal)

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return factory.IndicateFailure(
			fmt.Sprintf("SDK %q: directory %q set by %s does not exist", ref.String(), path, variable),
		), nil
	}

	return factory.IndicateSuccess(path, ref.Version), nil
}

var _ ports.SdkResolver = (*Resolver)(nil)
