package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/freshness/internal/adapters/telemetry"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/freshness/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnStart_LogsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(logger)

	logger.EXPECT().Info("Checking ripgrep from nixpkgs...").Times(1)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "nixpkgs.ripgrep", trace.WithAttributes(
		attribute.String(ports.AttrInput, "nixpkgs"),
		attribute.String(ports.AttrPackage, "ripgrep"),
	))
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_OnStart_IgnoresOtherSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(logger)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "unrelated")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_OnStartWithNilLogger(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "test-span")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestProvider_RoutesTracerSpansThroughBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().Info("Checking jq from tools...").Times(1)

	tp := telemetry.NewProvider(telemetry.NewBridge(logger))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerFrom(tp, "test")
	_, span := tracer.Start(context.Background(), "tools.jq",
		ports.WithAttribute(ports.AttrInput, "tools"),
		ports.WithAttribute(ports.AttrPackage, "jq"),
	)
	span.SetAttribute(ports.AttrStatus, "equal")
	span.End()
}
