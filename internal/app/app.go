// Package app implements the application layer for sdkres.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/sdkres/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/sdkres/internal/engine/evaluation"
	"go.trai.ch/sdkres/internal/engine/sdkresolution"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	provider     ports.ResolverProvider
	logger       ports.Logger
	tracer       ports.Tracer
	concurrency  int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	provider ports.ResolverProvider,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		provider:     provider,
		logger:       log,
		tracer:       tracer,
		concurrency:  runtime.NumCPU(),
	}
}

// WithConcurrency limits how many projects are evaluated at once.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.concurrency = n
	}
	return a
}

// ConfigureLogging switches the logger to JSON output or debug verbosity when it supports it.
func (a *App) ConfigureLogging(json, verbose bool) {
	type configurable interface {
		SetJSON(enable bool)
		SetVerbose(enable bool)
	}
	if l, ok := a.logger.(configurable); ok {
		l.SetJSON(json)
		l.SetVerbose(verbose)
	}
}

// EnableTracing exports evaluation spans as JSON to w. The returned function flushes them.
func (a *App) EnableTracing(w io.Writer) (func(context.Context) error, error) {
	return telemetry.InstallStdout(w)
}

// EvaluateOptions configures an evaluation run.
type EvaluateOptions struct {
	// ConfigPath is the sdkres.yaml to load. Empty means domain.ConfigFileName.
	ConfigPath string
	// Policy overrides the configured sharing policy when non-empty.
	Policy string
	// References are resolved for every project in Projects. When empty, the projects and
	// references declared in the configuration are evaluated.
	References []domain.SdkReference
	// Projects restricts or names the evaluated project files.
	Projects         []string
	SolutionFilePath string
}

// ProjectReport holds the results of one project's SDK references, in request order.
type ProjectReport struct {
	ProjectFilePath string
	Results         []*domain.Result
}

// Failed reports whether any reference of the project did not resolve.
func (r ProjectReport) Failed() bool {
	return slices.ContainsFunc(r.Results, func(res *domain.Result) bool { return !res.Success() })
}

// Report is the outcome of an evaluation run.
type Report struct {
	Policy   domain.SharingPolicy
	Projects []ProjectReport
}

// Failed reports whether any project has an unresolved reference.
func (r *Report) Failed() bool {
	return slices.ContainsFunc(r.Projects, ProjectReport.Failed)
}

type projectRequest struct {
	path string
	refs []domain.SdkReference
}

// Evaluate resolves the SDK references of every requested project through one evaluation
// context. Projects are evaluated concurrently, each through ContextForNewProject.
// Unresolved references are reported; resolver faults abort the run.
func (a *App) Evaluate(ctx context.Context, opts EvaluateOptions) (*Report, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	policy := cfg.Policy
	if opts.Policy != "" {
		if policy, err = domain.ParseSharingPolicy(opts.Policy); err != nil {
			return nil, err
		}
	}

	requests, skipped := planProjects(cfg, opts)
	for _, p := range skipped {
		a.logger.Warn(fmt.Sprintf("project %q declares no sdk references", p))
	}
	if len(requests) == 0 {
		return nil, domain.ErrNoSdkReferences
	}

	resolvers, err := a.provider.Resolvers(cfg)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build resolver chain")
	}

	root, err := evaluation.Create(policy, evaluation.WithResolvers(cfg.Root, resolvers...))
	if err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "sdkres.evaluate")
	defer span.End()
	span.SetAttribute("policy", policy.String())

	paths := make([]string, 0, len(requests))
	for _, req := range requests {
		paths = append(paths, req.path)
	}
	a.tracer.EmitPlan(ctx, paths)

	sink := messageLogger(a.logger)
	reports := make([]ProjectReport, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, req := range requests {
		g.Go(func() error {
			report, err := a.evaluateProject(gctx, root.ContextForNewProject(), req, ports.ResolverContext{
				ProjectFilePath:  req.path,
				SolutionFilePath: opts.SolutionFilePath,
				HostVersion:      cfg.HostVersion,
				Logger:           sink,
			})
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &Report{Policy: policy, Projects: reports}, nil
}

func (a *App) evaluateProject(
	ctx context.Context,
	ectx *evaluation.Context,
	req projectRequest,
	rctx ports.ResolverContext,
) (ProjectReport, error) {
	ctx, span := a.tracer.Start(ctx, "project.evaluate")
	defer span.End()
	span.SetAttribute("project", req.path)

	service := ectx.SdkResolverService()
	results := make([]*domain.Result, 0, len(req.refs))
	for _, ref := range req.refs {
		res, err := a.resolve(ctx, service, ref, rctx)
		if err != nil {
			span.RecordError(err)
			return ProjectReport{}, zerr.With(zerr.Wrap(err, "failed to resolve sdk"), "project", req.path)
		}
		results = append(results, res)
	}
	return ProjectReport{ProjectFilePath: req.path, Results: results}, nil
}

func (a *App) resolve(
	ctx context.Context,
	service ports.SdkResolverService,
	ref domain.SdkReference,
	rctx ports.ResolverContext,
) (*domain.Result, error) {
	ctx, span := a.tracer.Start(ctx, "sdk.resolve")
	defer span.End()
	span.SetAttribute("sdk", ref.String())

	res, err := service.Resolve(ctx, ref, rctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("outcome", res.Outcome().String())
	span.SetAttribute("resolver", res.ResolverName())
	return res, nil
}

// Resolvers returns the configured resolver chain in the order it is consulted.
func (a *App) Resolvers(configPath string) ([]ports.SdkResolver, error) {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	resolvers, err := a.provider.Resolvers(cfg)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build resolver chain")
	}
	return sdkresolution.NewService(resolvers...).Resolvers(), nil
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// planProjects pairs project paths with the references to resolve for them. Requested
// projects without configured references are returned as skipped.
func planProjects(cfg *domain.Config, opts EvaluateOptions) (requests []projectRequest, skipped []string) {
	if len(opts.References) > 0 {
		paths := opts.Projects
		if len(paths) == 0 {
			paths = []string{""}
		}
		for _, p := range paths {
			requests = append(requests, projectRequest{path: p, refs: opts.References})
		}
		return requests, nil
	}

	paths := opts.Projects
	if len(paths) == 0 {
		for p := range cfg.Projects {
			paths = append(paths, p)
		}
		slices.Sort(paths)
	}

	for _, p := range paths {
		refs, ok := cfg.Projects[p]
		if !ok && !filepath.IsAbs(p) {
			refs = cfg.Projects[filepath.Join(cfg.Root, p)]
		}
		if len(refs) == 0 {
			skipped = append(skipped, p)
			continue
		}
		requests = append(requests, projectRequest{path: p, refs: refs})
	}
	return requests, skipped
}
