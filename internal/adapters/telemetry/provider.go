package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/waypoint/internal/core/ports"
)

// ExporterStdout writes ended spans through the logger.
const ExporterStdout = "stdout"

// Setup installs the global OpenTelemetry tracer provider.
// With exporter set to ExporterStdout every ended span is logged; any other
// value records spans without exporting them.
// The returned function shuts the provider down.
func Setup(exporter string, logger ports.Logger) func(context.Context) error {
	var opts []sdktrace.TracerProviderOption
	if exporter == ExporterStdout {
		opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(logger)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}

// Shutdown flushes and stops the global tracer provider installed by Setup.
// It is a no-op when no SDK provider is installed.
func Shutdown(ctx context.Context) error {
	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		return nil
	}
	return tp.Shutdown(ctx)
}
