package tests

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"github.com/apostle2t/jobboard/pkg/logger"
)

func TestAttrsFromCtx(t *testing.T) {
	if got := logger.AttrsFromCtx(context.Background()); got != nil {
		t.Fatalf("no span in context must yield nil, got %v", got)
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	attrs := logger.AttrsFromCtx(ctx)
	if len(attrs) != 2 {
		t.Fatalf("expected trace_id and span_id, got %v", attrs)
	}
	if attrs[0].Key != "trace_id" || attrs[0].Value.String() != "0102030405060708090a0b0c0d0e0f10" {
		t.Fatalf("trace_id mismatch: %v", attrs[0])
	}
	if attrs[1].Key != "span_id" || attrs[1].Value.String() != "0102030405060708" {
		t.Fatalf("span_id mismatch: %v", attrs[1])
	}
}
