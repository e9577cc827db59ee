package opentelemetery

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const ServiceName = "travel-be"

var TraceProvider *sdktrace.TracerProvider

func Init(ctx context.Context) error {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return err
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(ServiceName)))
	if err != nil {
		return err
	}

	TraceProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(TraceProvider)
	return nil
}

func Shutdown(ctx context.Context) {
	if TraceProvider == nil {
		return
	}
	if err := TraceProvider.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down trace provider: %v", err)
	}
}
