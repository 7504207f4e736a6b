package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// spanImpl adapts an OpenTelemetry span to Span.
type spanImpl struct {
	span traceSpan.Span
}

func (s *spanImpl) End() {
	s.span.End()
}

func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}
	s.span.SetAttributes(toAttributes(attrs)...)
}

func (s *spanImpl) AddEvent(name string, attrs map[string]interface{}) {
	if !s.span.IsRecording() {
		return
	}
	s.span.AddEvent(name, traceSpan.WithAttributes(toAttributes(attrs)...))
}

func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// toAttributes maps common Go values to typed attributes; anything else is
// stored as its fmt.Sprint form.
func toAttributes(attrs map[string]interface{}) []attribute.KeyValue {
	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		case fmt.Stringer:
			attributes = append(attributes, attribute.String(k, val.String()))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}
	return attributes
}

// StartSpan starts a child span of the span carried by ctx.
//
// Example:
//
//	ctx, span := tr.StartSpan(ctx, "mpsc-tx")
//	defer span.End()
//	span.SetAttributes(map[string]interface{}{"uuid": id.String()})
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := t.tracer.Start(ctx, name)
	return ctx, &spanImpl{span: otSpan}
}
