package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is built without a meter
var ErrMeterNil = errors.New("telemetry: meter is nil")

// Attribute keys shared by content spans and metrics
const (
	AttrOwnerID    = attribute.Key("owner_id")
	AttrCampaignID = attribute.Key("campaign_id")
	AttrSeriesID   = attribute.Key("series_id")
	AttrState      = attribute.Key("state")
	AttrAdvisory   = attribute.Key("advisory")
	AttrOutcome    = attribute.Key("outcome")
	AttrModel      = attribute.Key("model")
)

// ContentMetrics records materialization and generation activity.
// All methods are safe on a nil receiver so callers can run without metrics.
type ContentMetrics struct {
	materializations   *Counter
	itemsWritten       *Counter
	tokensConsumed     *Counter
	advisories         *Counter
	generationDuration *Histogram
}

// NewContentMetrics registers the content instruments on meter
func NewContentMetrics(meter metric.Meter) (*ContentMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	var (
		cm  ContentMetrics
		err error
	)
	if cm.materializations, err = NewCounter(meter,
		"contentforge_materializations_total",
		"Materialization runs by terminal state",
		"{runs}",
	); err != nil {
		return nil, err
	}
	if cm.itemsWritten, err = NewCounter(meter,
		"contentforge_items_written_total",
		"Content items persisted",
		"{items}",
	); err != nil {
		return nil, err
	}
	if cm.tokensConsumed, err = NewCounter(meter,
		"contentforge_tokens_consumed_total",
		"Generation tokens charged to owners",
		"{tokens}",
	); err != nil {
		return nil, err
	}
	if cm.advisories, err = NewCounter(meter,
		"contentforge_quota_advisories_total",
		"Advisory quota warnings attached to results",
		"{warnings}",
	); err != nil {
		return nil, err
	}
	if cm.generationDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "contentforge_generation_duration_seconds",
		Description: "Latency of text generation calls",
		Unit:        "s",
		Boundaries:  GenerationDurationBuckets,
	}); err != nil {
		return nil, err
	}
	return &cm, nil
}

// RecordMaterialization counts a finished run and the items it wrote
func (cm *ContentMetrics) RecordMaterialization(ctx context.Context, state string, itemsWritten int) {
	if cm == nil {
		return
	}
	cm.materializations.Inc(ctx, AttrState.String(state))
	if itemsWritten > 0 {
		cm.itemsWritten.Add(ctx, int64(itemsWritten))
	}
}

// RecordTokens counts tokens charged for a run
func (cm *ContentMetrics) RecordTokens(ctx context.Context, tokens int64) {
	if cm == nil || tokens <= 0 {
		return
	}
	cm.tokensConsumed.Add(ctx, tokens)
}

// RecordAdvisory counts one quota warning by code
func (cm *ContentMetrics) RecordAdvisory(ctx context.Context, code string) {
	if cm == nil {
		return
	}
	cm.advisories.Inc(ctx, AttrAdvisory.String(code))
}

// RecordGeneration records generation latency with outcome "ok" or "error"
func (cm *ContentMetrics) RecordGeneration(ctx context.Context, d time.Duration, model string, err error) {
	if cm == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	cm.generationDuration.RecordDuration(ctx, d, AttrOutcome.String(outcome), AttrModel.String(model))
}
