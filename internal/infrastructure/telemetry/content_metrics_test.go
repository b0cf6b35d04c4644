package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contentforge/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestContentMetrics(t *testing.T) (*telemetry.ContentMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	cm, err := telemetry.NewContentMetrics(mp.Meter("test"))
	require.NoError(t, err)
	return cm, reader
}

func TestNewContentMetrics_NilMeter(t *testing.T) {
	cm, err := telemetry.NewContentMetrics(nil)
	assert.ErrorIs(t, err, telemetry.ErrMeterNil)
	assert.Nil(t, cm)
}

func TestContentMetrics_RecordMaterialization(t *testing.T) {
	cm, reader := newTestContentMetrics(t)
	ctx := context.Background()

	cm.RecordMaterialization(ctx, "DONE", 3)
	cm.RecordMaterialization(ctx, "DONE", 2)
	cm.RecordMaterialization(ctx, "FAILED", 0)

	rm := collect(t, reader)

	runs, ok := findMetric(rm, "contentforge_materializations_total")
	require.True(t, ok)
	sum, ok := runs.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	byState := map[string]int64{}
	for _, dp := range sum.DataPoints {
		state, _ := dp.Attributes.Value(telemetry.AttrState)
		byState[state.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"DONE": 2, "FAILED": 1}, byState)

	items, ok := findMetric(rm, "contentforge_items_written_total")
	require.True(t, ok)
	itemSum := items.Data.(metricdata.Sum[int64])
	require.Len(t, itemSum.DataPoints, 1)
	assert.Equal(t, int64(5), itemSum.DataPoints[0].Value)
}

func TestContentMetrics_RecordTokensIgnoresNonPositive(t *testing.T) {
	cm, reader := newTestContentMetrics(t)
	ctx := context.Background()

	cm.RecordTokens(ctx, 1500)
	cm.RecordTokens(ctx, 0)
	cm.RecordTokens(ctx, -10)

	m, ok := findMetric(collect(t, reader), "contentforge_tokens_consumed_total")
	require.True(t, ok)
	sum := m.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1500), sum.DataPoints[0].Value)
}

func TestContentMetrics_RecordAdvisoryAndGeneration(t *testing.T) {
	cm, reader := newTestContentMetrics(t)
	ctx := context.Background()

	cm.RecordAdvisory(ctx, "QUOTA_EXCEEDED")
	cm.RecordGeneration(ctx, 1500*time.Millisecond, "gpt-4o-mini", nil)
	cm.RecordGeneration(ctx, 3*time.Second, "gpt-4o-mini", errors.New("boom"))

	rm := collect(t, reader)

	adv, ok := findMetric(rm, "contentforge_quota_advisories_total")
	require.True(t, ok)
	advSum := adv.Data.(metricdata.Sum[int64])
	require.Len(t, advSum.DataPoints, 1)
	code, _ := advSum.DataPoints[0].Attributes.Value(telemetry.AttrAdvisory)
	assert.Equal(t, "QUOTA_EXCEEDED", code.AsString())

	gen, ok := findMetric(rm, "contentforge_generation_duration_seconds")
	require.True(t, ok)
	hist := gen.Data.(metricdata.Histogram[float64])
	outcomes := map[string]uint64{}
	for _, dp := range hist.DataPoints {
		o, _ := dp.Attributes.Value(telemetry.AttrOutcome)
		outcomes[o.AsString()] = dp.Count
	}
	assert.Equal(t, map[string]uint64{"ok": 1, "error": 1}, outcomes)
}

func TestContentMetrics_NilReceiver(t *testing.T) {
	var cm *telemetry.ContentMetrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		cm.RecordMaterialization(ctx, "DONE", 1)
		cm.RecordTokens(ctx, 10)
		cm.RecordAdvisory(ctx, "X")
		cm.RecordGeneration(ctx, time.Second, "m", nil)
	})
}
