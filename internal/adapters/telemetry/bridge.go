package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/freshness/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports the start of every
// package check as a progress line on the logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge. A nil logger disables progress output.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var input, pkg string
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attribute.Key(ports.AttrInput):
			input = kv.Value.AsString()
		case attribute.Key(ports.AttrPackage):
			pkg = kv.Value.AsString()
		}
	}
	if pkg == "" {
		return
	}

	b.logger.Info(fmt.Sprintf("Checking %s from %s...", pkg, input))
}

// OnEnd does nothing.
func (b *Bridge) OnEnd(_ sdktrace.ReadOnlySpan) {}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider returns a tracer provider that feeds every span to bridge.
func NewProvider(bridge *Bridge) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
}
