// Package app implements the application layer for waypoint.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/waypoint/internal/adapters/detector" //nolint:depguard // renderer is chosen per run
	"go.trai.ch/waypoint/internal/adapters/linear"   //nolint:depguard // renderer is chosen per run
	"go.trai.ch/waypoint/internal/adapters/watcher"  //nolint:depguard // debouncing belongs to watch runs
	"go.trai.ch/waypoint/internal/core/domain"
	"go.trai.ch/waypoint/internal/core/ports"
	"go.trai.ch/waypoint/internal/engine/routes"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader   ports.NetworkLoader
	logger   ports.Logger
	tracer   ports.Tracer
	watcher  ports.Watcher
	stdout   io.Writer
	renderer ports.Renderer
	debounce time.Duration
}

// New creates a new App instance.
func New(
	loader ports.NetworkLoader,
	log ports.Logger,
	tracer ports.Tracer,
	w ports.Watcher,
) *App {
	return &App{
		loader:   loader,
		logger:   log,
		tracer:   tracer,
		watcher:  w,
		stdout:   os.Stdout,
		debounce: watcher.DefaultDebounceWindow,
	}
}

// WithRenderer makes every run write through r instead of a renderer picked
// from the environment.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithStdout sets where results are written.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounce sets how long the routefile must be quiet before a watch re-run.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	Source domain.Source
	// Queries replaces the plan of the loaded network when not empty.
	Queries    []domain.Query
	OutputMode string
}

// Report loads the route network, evaluates its query plan and renders the results.
// Routes that do not exist are reported as results, not errors.
func (a *App) Report(ctx context.Context, opts ReportOptions) error {
	ctx, span := a.tracer.Start(ctx, "report")
	defer span.End()

	network, err := a.load(ctx, opts.Source)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("origin", network.Origin)
	span.SetAttribute("edges", network.Graph.EdgeCount())
	span.SetAttribute("fingerprint", network.Graph.Fingerprint())

	plan := network.Plan
	if len(opts.Queries) > 0 {
		plan = opts.Queries
	}
	if err := validatePlan(plan); err != nil {
		span.RecordError(err)
		return err
	}

	labels := make([]string, len(plan))
	for i, q := range plan {
		labels[i] = q.String()
	}
	a.tracer.EmitPlan(ctx, labels)

	results, err := a.evaluate(ctx, routes.New(network.Graph), plan)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.rendererFor(opts.OutputMode).RenderResults(network, results); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// QueryOptions configuration for the Query method.
type QueryOptions struct {
	Source     domain.Source
	Query      domain.Query
	OutputMode string
}

// Query evaluates and renders a single query against the route network.
func (a *App) Query(ctx context.Context, opts QueryOptions) error {
	return a.Report(ctx, ReportOptions{
		Source:     opts.Source,
		Queries:    []domain.Query{opts.Query},
		OutputMode: opts.OutputMode,
	})
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	Source     domain.Source
	OutputMode string
}

// Inspect renders a summary of the route graph: nodes, edges and fingerprint.
func (a *App) Inspect(ctx context.Context, opts InspectOptions) error {
	ctx, span := a.tracer.Start(ctx, "inspect")
	defer span.End()

	network, err := a.load(ctx, opts.Source)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.rendererFor(opts.OutputMode).RenderGraph(network); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// load reads the network and warns about anything the lenient parser skipped.
func (a *App) load(ctx context.Context, src domain.Source) (*domain.Network, error) {
	_, span := a.tracer.Start(ctx, "load")
	defer span.End()

	network, err := a.loader.Load(src)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load route data")
	}
	span.SetAttribute("origin", network.Origin)
	span.SetAttribute("rejected", len(network.Rejected))

	if n := len(network.Rejected); n > 0 {
		a.logger.Warn(fmt.Sprintf("%s: skipped %d malformed route %s: %s",
			network.Origin, n, plural(n, "token", "tokens"), strings.Join(network.Rejected, ", ")))
	}
	if network.Graph.IsEmpty() {
		a.logger.Warn(network.Origin + ": no routes found")
	}
	return network, nil
}

func validatePlan(plan []domain.Query) error {
	for i, q := range plan {
		if err := q.Validate(); err != nil {
			return zerr.With(err, "index", i)
		}
	}
	return nil
}

// evaluate answers every query concurrently. Results keep plan order.
func (a *App) evaluate(ctx context.Context, engine *routes.Engine, plan []domain.Query) ([]domain.Result, error) {
	results := make([]domain.Result, len(plan))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, q := range plan {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			_, span := a.tracer.Start(gctx, "query",
				ports.WithAttribute("query.kind", string(q.Kind)),
				ports.WithAttribute("query.label", q.String()),
			)
			defer span.End()

			res := engine.Evaluate(q)
			switch {
			case res.Found():
				span.SetAttribute("query.value", res.Value)
			case res.NoRoute():
				span.SetAttribute("query.no_route", true)
			default:
				span.RecordError(res.Err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrQueryEvaluationFailed, err)
	}
	return results, nil
}

func (a *App) rendererFor(outputMode string) ports.Renderer {
	if a.renderer != nil {
		return a.renderer
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)

	switch mode {
	case detector.ModeStyled:
		return linear.NewRenderer(a.stdout, linear.FormatStyled)
	case detector.ModeJSON:
		return linear.NewRenderer(a.stdout, linear.FormatJSON)
	default:
		return linear.NewRenderer(a.stdout, linear.FormatPlain)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
