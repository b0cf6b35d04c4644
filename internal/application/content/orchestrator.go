package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/contentforge/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Orchestrator drives the materialization saga:
// campaign, optional source, series, items, then usage accounting.
// Steps run strictly in order and nothing is rolled back; a failure returns
// the partial Result with FailedAt set so the caller can Resume.
type Orchestrator struct {
	campaigns      campaign.Repository
	recorder       UsageRecorder
	quotas         QuotaChecker
	generator      Generator
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
	metrics        *telemetry.ContentMetrics
	logger         *zap.Logger
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithGenerator enables GenerateAndMaterialize
func WithGenerator(g Generator) Option {
	return func(o *Orchestrator) {
		o.generator = g
	}
}

// WithIdempotencyStore makes requests carrying an idempotency key safe to repeat
func WithIdempotencyStore(store shared.IdempotencyStore, ttl time.Duration) Option {
	return func(o *Orchestrator) {
		o.idempotency = store
		if ttl > 0 {
			o.idempotencyTTL = ttl
		}
	}
}

// WithMetrics records run outcomes
func WithMetrics(m *telemetry.ContentMetrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// NewOrchestrator creates an Orchestrator. quotas may be nil, which skips the advisory gate.
func NewOrchestrator(campaigns campaign.Repository, recorder UsageRecorder, quotas QuotaChecker, logger *zap.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Orchestrator{
		campaigns:      campaigns,
		recorder:       recorder,
		quotas:         quotas,
		idempotencyTTL: shared.DefaultIdempotencyConfig().TTL,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Materialize persists generated content under a campaign and accounts the usage.
//
// Invalid input or a missing owner fails before any write with a nil Result.
// A failure during the saga returns the partial Result together with a *SagaError.
// Quota advisories and accounting failures are attached as warnings; the run still
// reaches DONE.
func (o *Orchestrator) Materialize(ctx context.Context, req MaterializeRequest) (*Result, error) {
	if err := validateRequest(req.OwnerID, req, req.SourceURL); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "content.materialize",
		"owner_id", req.OwnerID,
		"item_count", len(req.Items),
	)
	defer span.End()

	res := &Result{State: StateStart}
	o.adviseQuota(ctx, req, res)

	err := o.run(ctx, span, req, res, true)
	o.finish(ctx, span, req, res, err)
	return res, err
}

// Resume continues a failed or unaccounted run from where prev stopped,
// reusing the campaign, source and series prev already persisted. Items are
// appended from prev.Written+1, so req must carry the same items as the
// original request. The idempotency key is not consulted again.
func (o *Orchestrator) Resume(ctx context.Context, req MaterializeRequest, prev *Result) (*Result, error) {
	if err := validateRequest(req.OwnerID, req, req.SourceURL); err != nil {
		return nil, err
	}
	if prev != nil && prev.Duplicate() {
		return nil, shared.ErrDuplicateRequest
	}
	if prev == nil || !prev.Resumable() {
		return nil, shared.NewValidationError("nothing to resume")
	}
	if prev.Campaign != nil && !prev.Campaign.OwnedBy(req.OwnerID) {
		return nil, shared.ErrNotFound
	}
	if prev.Series != nil && prev.Series.TotalItems != len(req.Items) {
		return nil, shared.NewValidationError(fmt.Sprintf(
			"series declares %d items but request carries %d", prev.Series.TotalItems, len(req.Items)))
	}
	if prev.Written > len(req.Items) {
		return nil, shared.NewValidationError("previous run wrote more items than the request carries")
	}

	ctx, span := telemetry.StartSpan(ctx, "content.resume",
		"owner_id", req.OwnerID,
		"failed_at", string(prev.FailedAt),
		"written", prev.Written,
	)
	defer span.End()

	res := &Result{
		Campaign:   prev.Campaign,
		Source:     prev.Source,
		Series:     prev.Series,
		Items:      append([]campaign.ContentItem(nil), prev.Items...),
		UsageEvent: prev.UsageEvent,
		State:      StateStart,
		Written:    prev.Written,
	}

	err := o.run(ctx, span, req, res, false)
	o.finish(ctx, span, req, res, err)
	return res, err
}

// ResumeSeries resumes the run that created seriesID, rebuilding its
// checkpoint from storage: stored items are counted and usage is recorded
// only if no event accounts the series yet. req must carry the same items as
// the original request.
func (o *Orchestrator) ResumeSeries(ctx context.Context, req MaterializeRequest, seriesID uuid.UUID) (*Result, error) {
	if err := validateRequest(req.OwnerID, req, req.SourceURL); err != nil {
		return nil, err
	}
	series, err := o.campaigns.FindSeries(ctx, seriesID, req.OwnerID)
	if err != nil {
		return nil, err
	}
	c, err := o.campaigns.FindCampaign(ctx, series.CampaignID, req.OwnerID)
	if err != nil {
		return nil, err
	}
	consistency, err := o.campaigns.CheckSeriesConsistency(ctx, series.ID)
	if err != nil {
		return nil, err
	}
	event, err := o.recorder.FindForOutput(ctx, c.ID, series.ID)
	if err != nil {
		return nil, err
	}

	prev := &Result{
		Campaign:   c,
		Series:     series,
		UsageEvent: event,
		State:      StateError,
		Written:    consistency.Actual,
	}
	switch {
	case consistency.Actual < consistency.Declared:
		prev.FailedAt = StateItemsAppended
	case event == nil:
		prev.FailedAt = StateUsageRecorded
	default:
		return nil, shared.NewValidationError("series is complete and accounted, nothing to resume")
	}
	return o.Resume(ctx, req, prev)
}

// GenerateAndMaterialize calls the generator bounded by timeout and materializes
// what it returns. A failed, timed-out or unsuccessful generation is an
// external service error and nothing is written.
func (o *Orchestrator) GenerateAndMaterialize(ctx context.Context, req GenerateRequest, timeout time.Duration) (*Result, error) {
	if err := validateRequest(req.OwnerID, req, req.SourceURL); err != nil {
		return nil, err
	}
	if o.generator == nil {
		return nil, shared.NewExternalServiceError("no generator configured", nil)
	}

	genReq := req.generation()
	resp, err := o.generate(ctx, genReq, timeout)
	if err != nil {
		o.logger.Warn("Generation failed",
			zap.String("owner_id", req.OwnerID),
			zap.String("source_url", req.SourceURL),
			zap.Error(err))
		return nil, err
	}

	return o.Materialize(ctx, req.materialize(resp))
}

func (o *Orchestrator) generate(ctx context.Context, req GenerationRequest, timeout time.Duration) (*GenerationResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "content.generate",
		"source_url", req.SourceURL,
		"item_count", req.ItemCount,
	)
	defer span.End()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := o.generator.Generate(ctx, req)
	model := ""
	if resp != nil {
		model = resp.Model
	}
	o.metrics.RecordGeneration(ctx, time.Since(start), model, err)

	switch {
	case err != nil:
		if errors.Is(err, context.DeadlineExceeded) {
			err = shared.NewExternalServiceError("generation timed out", err)
		} else if !errors.Is(err, shared.ErrExternalService) {
			err = shared.NewExternalServiceError("generation failed", err)
		}
		telemetry.RecordError(span, err)
		return nil, err
	case resp == nil || !resp.Success:
		msg := "generation was unsuccessful"
		if resp != nil && resp.Error != "" {
			msg = resp.Error
		}
		err = shared.NewExternalServiceError(msg, nil)
		telemetry.RecordError(span, err)
		return nil, err
	case len(resp.Items) == 0:
		err = shared.NewExternalServiceError("generation returned no items", nil)
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "model", resp.Model, "tokens", resp.TokensConsumed)
	return resp, nil
}

// adviseQuota attaches warnings for near or exhausted quotas. It never blocks.
func (o *Orchestrator) adviseQuota(ctx context.Context, req MaterializeRequest, res *Result) {
	if o.quotas == nil {
		return
	}
	status, err := o.quotas.Status(ctx, req.OwnerID, req.Tier)
	if err != nil {
		o.logger.Warn("Quota status unavailable", zap.String("owner_id", req.OwnerID), zap.Error(err))
		res.warn(WarningQuotaUnavailable, "quota status could not be determined")
		o.metrics.RecordAdvisory(ctx, WarningQuotaUnavailable)
		return
	}

	if status.AtLimit() || status.NearLimit() {
		for _, ru := range status.Report.Breaching() {
			res.warn(WarningQuotaAdvisory, fmt.Sprintf("%s at %d%% of the %s limit",
				ru.Resource, ru.Percent, status.DisplayName))
		}
		o.metrics.RecordAdvisory(ctx, WarningQuotaAdvisory)
	}
	if status.ExceedsPerGeneration(len(req.Items)) {
		res.warn(WarningGenerationCap, fmt.Sprintf("%d items exceeds the %s limit of %s per generation",
			len(req.Items), status.DisplayName, status.Limits.ItemsPerGeneration))
		o.metrics.RecordAdvisory(ctx, WarningGenerationCap)
	}
}

// run executes every step whose output res does not hold yet
func (o *Orchestrator) run(ctx context.Context, span trace.Span, req MaterializeRequest, res *Result, claimKey bool) error {
	log := o.logger.With(zap.String("owner_id", req.OwnerID))

	if res.Campaign == nil {
		c, err := o.resolveCampaign(ctx, req)
		if err != nil {
			return res.fail(StateCampaignResolved, err)
		}
		res.Campaign = c
	}
	res.State = StateCampaignResolved
	telemetry.SetAttributes(span, "campaign_id", res.Campaign.ID.String())

	if req.SourceURL != "" {
		if res.Source == nil {
			src, err := o.campaigns.FindOrCreateSource(ctx, res.Campaign.ID, req.SourceURL, req.Page)
			if err != nil {
				return res.fail(StateSourceResolved, err)
			}
			res.Source = src
		}
		res.State = StateSourceResolved
	}

	if res.Series == nil {
		var key string
		if claimKey {
			var err error
			if key, err = o.claim(ctx, req); err != nil {
				return res.fail(StateSeriesCreated, err)
			}
		}
		series, err := o.campaigns.CreateSeries(ctx, res.Campaign.ID, res.sourceID(), o.seriesMeta(req, res.Campaign))
		if err != nil {
			// nothing was created under the key, so a retry must be able to claim it
			o.release(ctx, key)
			return res.fail(StateSeriesCreated, err)
		}
		res.Series = series
		telemetry.AddEvent(span, "series.created", "series_id", series.ID.String(), "declared", series.TotalItems)
	}
	res.State = StateSeriesCreated

	if res.Written < len(req.Items) {
		var (
			items []campaign.ContentItem
			err   error
		)
		if res.Written == 0 {
			items, err = o.campaigns.AppendItems(ctx, res.Series.ID, res.Campaign.ID, req.Items)
		} else {
			items, err = o.campaigns.AppendItemsFrom(ctx, res.Series.ID, res.Campaign.ID, res.Written+1, req.Items[res.Written:])
		}
		res.Items = append(res.Items, items...)
		res.Written += len(items)
		if err != nil {
			log.Error("Item append stopped",
				zap.String("series_id", res.Series.ID.String()),
				zap.Int("written", res.Written),
				zap.Int("declared", res.Series.TotalItems),
				zap.Error(err))
			return res.fail(StateItemsAppended, err)
		}
	}
	res.State = StateItemsAppended

	if res.UsageEvent == nil {
		event, err := o.recorder.Record(ctx, o.recordInput(req, res))
		if err != nil {
			log.Warn("Content saved but usage not recorded",
				zap.String("series_id", res.Series.ID.String()),
				zap.Error(err))
			res.warn(WarningAccountingFailure, "content was saved but usage could not be recorded")
			res.State = StateDone
			return nil
		}
		res.UsageEvent = event
		telemetry.AddEvent(span, "usage.recorded", "event_id", event.ID.String())
	}
	res.State = StateUsageRecorded

	res.State = StateDone
	return nil
}

func (o *Orchestrator) resolveCampaign(ctx context.Context, req MaterializeRequest) (*campaign.Campaign, error) {
	if req.CampaignID != nil {
		return o.campaigns.FindCampaign(ctx, *req.CampaignID, req.OwnerID)
	}
	return o.campaigns.FindOrCreateCampaign(ctx, req.OwnerID, req.CampaignName, campaign.Defaults{
		Description: req.CampaignDescription,
		Industry:    req.Industry,
		Tone:        req.Tone,
	})
}

// claim marks the idempotency key just before the first non-deduplicated write.
// It returns the claimed store key, empty when no key applies.
func (o *Orchestrator) claim(ctx context.Context, req MaterializeRequest) (string, error) {
	if o.idempotency == nil || req.IdempotencyKey == "" {
		return "", nil
	}
	key := req.OwnerID + ":" + strings.TrimSpace(req.IdempotencyKey)
	fresh, err := o.idempotency.MarkProcessed(ctx, key, o.idempotencyTTL)
	if err != nil {
		return "", shared.NewPersistenceError("claim idempotency key", err)
	}
	if !fresh {
		return "", shared.ErrDuplicateRequest
	}
	return key, nil
}

func (o *Orchestrator) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	// the request context may already be done; the key must still go
	if err := o.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		o.logger.Warn("Idempotency key not released; retries are refused until it expires",
			zap.String("key", key),
			zap.Error(err))
	}
}

func (o *Orchestrator) seriesMeta(req MaterializeRequest, c *campaign.Campaign) campaign.SeriesMeta {
	name := req.SeriesName
	if name == "" {
		name = SeriesName(req.SourceURL, c.Name)
	}
	tone, industry := req.Tone, req.Industry
	if tone == "" {
		tone = c.Tone
	}
	if industry == "" {
		industry = c.Industry
	}
	return campaign.SeriesMeta{
		Name:           name,
		Description:    SeriesDescription(len(req.Items), req.SourceURL),
		TotalItems:     len(req.Items),
		Tone:           tone,
		Industry:       industry,
		TargetAudience: req.TargetAudience,
		ReferenceLink:  req.ReferenceLink,
		ModelUsed:      req.Model,
		TokensConsumed: req.TokensConsumed,
	}
}

func (o *Orchestrator) recordInput(req MaterializeRequest, res *Result) appusage.RecordInput {
	campaignID := res.Campaign.ID
	seriesID := res.Series.ID
	in := appusage.RecordInput{
		OwnerID:        req.OwnerID,
		CampaignID:     &campaignID,
		Feature:        usage.FeatureEmailGeneration,
		TokensConsumed: req.TokensConsumed,
		ItemsProduced:  int64(len(req.Items)),
		SourceType:     usage.SourceTypeManual,
		OutputType:     usage.OutputTypeEmailSeries,
		OutputRef:      &seriesID,
		SessionID:      req.SessionID,
	}
	if res.Source != nil {
		in.SourceType = usage.SourceTypeWebpage
		in.SourceRef = res.sourceID()
	}
	return in
}

func (o *Orchestrator) finish(ctx context.Context, span trace.Span, req MaterializeRequest, res *Result, err error) {
	telemetry.SetAttributes(span, "state", string(res.State), "written", res.Written)
	o.metrics.RecordMaterialization(ctx, string(res.State), res.Written)

	if err != nil {
		telemetry.RecordError(span, err)
		o.logger.Error("Materialization failed",
			zap.String("owner_id", req.OwnerID),
			zap.String("failed_at", string(res.FailedAt)),
			zap.Int("written", res.Written),
			zap.Error(err))
		return
	}
	if res.UsageEvent != nil {
		o.metrics.RecordTokens(ctx, res.UsageEvent.TokensConsumed)
	}
	o.logger.Info("Content materialized",
		zap.String("owner_id", req.OwnerID),
		zap.String("campaign_id", res.Campaign.ID.String()),
		zap.String("series_id", res.Series.ID.String()),
		zap.Int("items", res.Written),
		zap.Int("warnings", len(res.Warnings)))
}
