// Package evaluator compares the locked and upstream versions of tracked packages.
package evaluator

import (
	"context"
	"fmt"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Evaluator resolves and compares every (input, package) pair of a grouping.
type Evaluator struct {
	resolver ports.VersionResolver
	logger   ports.Logger
	tracer   ports.Tracer
	refs     SourceRefs
	workers  int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithSourceRefs replaces the default PinnedRefs strategy.
func WithSourceRefs(refs SourceRefs) Option {
	return func(e *Evaluator) {
		e.refs = refs
	}
}

// New creates an Evaluator bounded to settings.Workers concurrent pairs.
func New(
	resolver ports.VersionResolver,
	logger ports.Logger,
	tracer ports.Tracer,
	settings domain.Settings,
	opts ...Option,
) *Evaluator {
	e := &Evaluator{
		resolver: resolver,
		logger:   logger,
		tracer:   tracer,
		refs:     PinnedRefs{},
		workers:  settings.Workers,
	}
	if e.workers < 1 {
		e.workers = 1
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type pair struct {
	record domain.InputRecord
	pkg    string
}

// Evaluate returns one result per pair whose input exists in inputs, in grouping order.
// Groups whose input is missing are skipped with a warning.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	grouping domain.Grouping,
	inputs map[string]domain.InputRecord,
	useCache bool,
	system string,
) []domain.ComparisonResult {
	attrPath := "legacyPackages." + system

	var pairs []pair
	for _, group := range grouping {
		record, ok := inputs[group.Input]
		if !ok {
			e.logger.Warn(fmt.Sprintf("input %q not found in flake", group.Input))
			continue
		}
		for _, pkg := range group.Packages {
			pairs = append(pairs, pair{record: record, pkg: pkg})
		}
	}

	results := make([]domain.ComparisonResult, len(pairs))

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i, p := range pairs {
		g.Go(func() error {
			results[i] = e.evaluatePair(ctx, p, attrPath, useCache)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (e *Evaluator) evaluatePair(ctx context.Context, p pair, attrPath string, useCache bool) domain.ComparisonResult {
	ctx, span := e.tracer.Start(ctx, p.record.Name+"."+p.pkg,
		ports.WithAttribute(ports.AttrInput, p.record.Name),
		ports.WithAttribute(ports.AttrPackage, p.pkg),
	)
	defer span.End()

	current := domain.NoLock()
	if ref, ok := e.refs.Current(p.record); ok {
		current = e.resolve(ctx, ref, attrPath, p.pkg, useCache)
	}
	latest := e.resolve(ctx, e.refs.Latest(p.record), attrPath, p.pkg, useCache)

	status := domain.Compare(current, latest)
	span.SetAttribute(ports.AttrStatus, string(status))

	return domain.ComparisonResult{
		Package: p.pkg,
		Input:   p.record.Name,
		Branch:  p.record.BranchLabel(),
		Current: current,
		Latest:  latest,
		Status:  status,
	}
}

func (e *Evaluator) resolve(ctx context.Context, ref, attrPath, pkg string, useCache bool) domain.Version {
	if ctx.Err() != nil {
		return domain.NotFound()
	}
	return e.resolver.Resolve(ctx, ref, attrPath, pkg, useCache)
}
