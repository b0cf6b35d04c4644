package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/contentforge/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func TestStartSpan_RecordsAttributesAndEvents(t *testing.T) {
	sr := installRecorder(t)

	ctx, span := telemetry.StartSpan(context.Background(), "content.materialize",
		"owner_id", "user-1",
		"item_count", 5,
		"resumed", false,
		42, "ignored key",
	)
	telemetry.SetAttributes(span, "series_id", int64(9))
	telemetry.AddEvent(span, "series.created", "declared", 5)
	assert.NotEmpty(t, telemetry.TraceID(ctx))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, "content.materialize", s.Name())
	assert.Equal(t, telemetry.TracerName, s.InstrumentationScope().Name)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "user-1", attrs["owner_id"].AsString())
	assert.Equal(t, int64(5), attrs["item_count"].AsInt64())
	assert.False(t, attrs["resumed"].AsBool())
	assert.Equal(t, int64(9), attrs["series_id"].AsInt64())
	assert.Len(t, attrs, 4)

	require.Len(t, s.Events(), 1)
	assert.Equal(t, "series.created", s.Events()[0].Name)
}

func TestRecordError_SetsStatus(t *testing.T) {
	sr := installRecorder(t)

	_, span := telemetry.StartSpan(context.Background(), "content.generate")
	telemetry.RecordError(span, nil)
	telemetry.RecordError(span, errors.New("upstream timeout"))
	span.End()

	s := sr.Ended()[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "upstream timeout", s.Status().Description)
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "exception", s.Events()[0].Name)
}

func TestTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, telemetry.TraceID(context.Background()))
}
