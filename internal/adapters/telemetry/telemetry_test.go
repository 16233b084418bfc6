package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/lessco/internal/adapters/telemetry"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/lessco/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_RecordsAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "compile",
		ports.WithAttribute("client", "site"),
		ports.WithAttribute("force", false),
	)
	span.SetAttribute("written", true)
	span.SetAttribute("bytes", 42)
	n, err := span.Write([]byte("lessc output"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "compile", got.Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("client", "site"),
		attribute.Bool("force", false),
		attribute.Bool("written", true),
		attribute.Int("bytes", 42),
	}, got.Attributes())
	require.Len(t, got.Events(), 1)
	assert.Equal(t, "log", got.Events()[0].Name)
}

func TestOTelSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "compile")
	span.RecordError(errors.New("lessc exploded"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "lessc exploded", ended[0].Status().Description)
}

func TestLogBridge_ReportsEndedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var line string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { line = msg }).Times(1)

	tracer := telemetry.NewOTelTracerFrom(telemetry.NewProvider(mockLogger), "test")
	_, span := tracer.Start(context.Background(), "compile", ports.WithAttribute("template", "beez"))
	span.SetAttribute("cached", true)
	span.RecordError(errors.New("boom"))
	span.End()

	assert.True(t, strings.HasPrefix(line, "compile took "), line)
	assert.True(t, strings.HasSuffix(line, " cached=true template=beez status=error"), line)
}

func TestLogBridge_NilLogger(_ *testing.T) {
	tracer := telemetry.NewOTelTracerFrom(telemetry.NewProvider(nil), "test")
	_, span := tracer.Start(context.Background(), "compile")
	span.End()
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	span.End()
}

func TestNewOTelTracer_Global(t *testing.T) {
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "noop")
	assert.NotNil(t, span)
	span.End()
}
