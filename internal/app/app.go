// Package app implements the application layer for freshness.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/freshness/internal/adapters/cas"
	"go.trai.ch/freshness/internal/adapters/detector"
	"go.trai.ch/freshness/internal/adapters/nix"
	"go.trai.ch/freshness/internal/adapters/report"
	"go.trai.ch/freshness/internal/adapters/telemetry"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/freshness/internal/engine/evaluator"
	"go.trai.ch/freshness/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	versions     ports.VersionOracle
	metadata     ports.MetadataOracle
	system       ports.SystemDetector
	settings     domain.Settings
	stdout       io.Writer
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	versions ports.VersionOracle,
	metadata ports.MetadataOracle,
	system ports.SystemDetector,
	settings domain.Settings,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		versions:     versions,
		metadata:     metadata,
		system:       system,
		settings:     settings,
		stdout:       os.Stdout,
		now:          time.Now,
	}
}

// WithOutput sets the writer reports are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithClock sets the clock used to compute revision ages.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	FlakePath    string
	PackagesPath string
	UpdatesOnly  bool
	NoCache      bool
	JSON         bool
	Workers      int
	Color        string
}

// HealthOptions configuration for the Health method.
type HealthOptions struct {
	CheckOptions
	Input string
}

// Check evaluates every configured package against the input it is grouped under.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	cfg, settings, err := a.prepare(opts)
	if err != nil {
		return err
	}

	run, shutdown := a.newRun(settings, evaluator.PinnedRefs{})
	defer shutdown()

	a.logger.Info("Extracting all inputs from: " + opts.FlakePath)
	inputs := run.extractor.Extract(ctx, opts.FlakePath)
	if len(inputs) == 0 {
		return zerr.With(domain.ErrMetadataUnavailable, "flake", opts.FlakePath)
	}

	system := a.system.CurrentSystem(ctx)
	grouping := cfg.Packages.Grouping(settings.DefaultInput)
	a.logger.Info(fmt.Sprintf("Checking %d packages across %d inputs...", grouping.Total(), len(grouping)))

	results := run.evaluator.Evaluate(ctx, grouping, inputs, !opts.NoCache, system)

	return a.render(opts, domain.Report{
		Mode:    domain.ReportCheck,
		Results: display(results, opts.UpdatesOnly),
		Summary: evaluator.Summarize(results),
	})
}

// Health evaluates the packages of a single input against the head of the
// branch it tracks, reporting how old the locked revision is.
func (a *App) Health(ctx context.Context, opts HealthOptions) error {
	cfg, settings, err := a.prepare(opts.CheckOptions)
	if err != nil {
		return err
	}

	input := opts.Input
	if input == "" {
		input = settings.DefaultInput
	}

	packages := packagesFor(cfg.Packages.Grouping(input), input)
	if len(packages) == 0 {
		a.logger.Warn("No packages found to check")
		return nil
	}

	run, shutdown := a.newRun(settings, evaluator.BranchRefs{Base: settings.PrimaryBase})
	defer shutdown()

	system := a.system.CurrentSystem(ctx)
	a.logger.Info(fmt.Sprintf("Checking %d packages from %s...", len(packages), input))
	a.logger.Info(fmt.Sprintf("Extracting %s info from: %s", input, opts.FlakePath))

	record := run.extractor.ExtractPrimary(ctx, opts.FlakePath, input)
	if !record.HasLock() {
		a.logger.Warn("Could not determine locked revision")
	}

	grouping := domain.Grouping{{Input: input, Packages: packages}}
	inputs := map[string]domain.InputRecord{input: record}
	results := run.evaluator.Evaluate(ctx, grouping, inputs, !opts.NoCache, system)

	return a.render(opts.CheckOptions, domain.Report{
		Mode:        domain.ReportHealth,
		Results:     display(results, opts.UpdatesOnly),
		Summary:     evaluator.SummarizePrimary(results, input),
		Branch:      record.BranchLabel(),
		RevisionAge: record.RevisionAge(a.now()),
	})
}

// Clean removes the version cache directory.
func (a *App) Clean(_ context.Context) error {
	store := cas.NewStore(a.settings)

	a.logger.Info("removing version cache...")
	if err := store.Clear(); err != nil {
		return err
	}
	a.logger.Info("removed version cache")
	return nil
}

// prepare loads the package configuration, merges run settings and verifies the flake exists.
func (a *App) prepare(opts CheckOptions) (*domain.PackageConfig, domain.Settings, error) {
	path, err := a.configLoader.Find(opts.PackagesPath)
	if err != nil {
		return nil, domain.Settings{}, err
	}

	a.logger.Info("Loading packages from: " + path)
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if _, err := os.Stat(opts.FlakePath); err != nil {
		return nil, domain.Settings{}, zerr.With(domain.ErrFlakeNotFound, "path", opts.FlakePath)
	}

	settings := cfg.Apply(a.settings).WithWorkers(opts.Workers)
	return cfg, settings, nil
}

// run holds the per-run components built from merged settings.
type run struct {
	extractor ports.MetadataExtractor
	evaluator *evaluator.Evaluator
}

func (a *App) newRun(settings domain.Settings, refs evaluator.SourceRefs) (*run, func()) {
	// Progress lines are emitted from span starts through the bridge.
	tp := setupOTel(telemetry.NewBridge(a.logger))
	tracer := telemetry.NewOTelTracer("freshness")

	resolver := nix.NewResolver(a.versions, cas.NewStore(settings), a.logger, settings)

	return &run{
			extractor: nix.NewExtractor(a.metadata, a.logger, settings),
			evaluator: evaluator.New(resolver, a.logger, tracer, settings, evaluator.WithSourceRefs(refs)),
		}, func() {
			_ = tp.Shutdown(context.Background())
		}
}

func (a *App) render(opts CheckOptions, r domain.Report) error {
	var reporter ports.Reporter
	if opts.JSON {
		reporter = report.NewJSONRenderer()
	} else {
		mode := detector.ResolveMode(detector.DetectEnvironment(), opts.Color)
		reporter = report.NewTableRenderer(output.ProfileFor(mode == detector.ModeColor))
	}
	return reporter.Render(a.stdout, r)
}

func display(results []domain.ComparisonResult, updatesOnly bool) []domain.ComparisonResult {
	if updatesOnly {
		return domain.OnlyOutdated(results)
	}
	return results
}

func packagesFor(grouping domain.Grouping, input string) []string {
	for _, group := range grouping {
		if group.Input == input {
			return group.Packages
		}
	}
	return nil
}

// setupOTel configures the OpenTelemetry SDK with the progress bridge.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	tp := telemetry.NewProvider(bridge)
	otel.SetTracerProvider(tp)
	return tp
}
