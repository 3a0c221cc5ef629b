package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/anexia-it/go-urltype/pkg/urltype"
)

// Default tracer name for typed-parameter resolution.
const defaultTracerName = "urltype"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "urltype").
	TracerName string

	// Filter determines which resolutions to trace.
	// Return true to trace, false to skip. If nil, all are traced.
	Filter func(info urltype.ResolveInfo) bool

	// AttributeExtractor extracts custom attributes per resolution.
	AttributeExtractor func(info urltype.ResolveInfo) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithFilter sets a filter function for resolutions.
func WithFilter(filter func(info urltype.ResolveInfo) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(info urltype.ResolveInfo) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that traces every typed parameter
// resolution.
//
// Each resolution gets a span named "urltype.resolve <param>" carrying
// the parameter id, type name and destination state. Failures are
// recorded on the span and set its status.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before navigating:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) urltype.Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return urltype.MiddlewareFunc(func(ctx context.Context, info urltype.ResolveInfo, next func(context.Context) error) error {
		if config.Filter != nil && !config.Filter(info) {
			return next(ctx)
		}

		attrs := []attribute.KeyValue{
			attribute.String("urltype.param", info.ParamID),
			attribute.String("urltype.type", info.TypeName),
			attribute.String("urltype.state", info.Transition.To().Name()),
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(info)...)
		}

		spanCtx, span := config.tracer.Start(
			ctx,
			fmt.Sprintf("urltype.resolve %s", info.ParamID),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		err := next(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	})
}
