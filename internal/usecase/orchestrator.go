package usecase

import (
	"context"
	"sync"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/metrics"
)

// Orchestrator builds and runs the per-hotel pipeline and fans out over
// the hotel registry. Each hotel gets its own run context, so concurrent
// runs share nothing.
type Orchestrator struct {
	hostpms  repository.HostPMSRepository
	esb      repository.ESBRepository
	storage  repository.StorageRepository
	notifier repository.NotifierRepository
	hotels   repository.HotelRepository
	runs     repository.RunRepository
	metrics  *metrics.Metrics
	logger   logger.Logger

	windowStartOffset int
	windowEndOffset   int
	workers           int
	fallbackHotels    []string
}

// NewOrchestrator wires the pipeline dependencies together
func NewOrchestrator(
	hostpms repository.HostPMSRepository,
	esb repository.ESBRepository,
	storage repository.StorageRepository,
	notifier repository.NotifierRepository,
	hotels repository.HotelRepository,
	runs repository.RunRepository,
	m *metrics.Metrics,
	windowStartOffset, windowEndOffset, workers int,
	logger logger.Logger,
) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		hostpms:           hostpms,
		esb:               esb,
		storage:           storage,
		notifier:          notifier,
		hotels:            hotels,
		runs:              runs,
		metrics:           m,
		logger:            logger,
		windowStartOffset: windowStartOffset,
		windowEndOffset:   windowEndOffset,
		workers:           workers,
	}
}

func (o *Orchestrator) buildPipeline() *pipeline.Pipeline {
	steps := []pipeline.Step{
		NewFetchParametersStep(o.esb, o.logger),
		NewProcessConfigStep(o.hostpms, o.storage, o.esb, o.logger),
		NewProcessSegmentsStep(o.storage, o.esb, o.logger),
		NewProcessInventoryStep(o.storage, o.esb, o.logger),
		NewProcessStatDailyStep(o.hostpms, o.storage, o.esb, o.metrics,
			o.windowStartOffset, o.windowEndOffset, o.logger),
		NewUpdateImportDateStep(o.esb, o.logger),
		NewSendNotificationsStep(o.notifier, o.metrics, o.logger),
	}
	return pipeline.New("hostpms-sync", steps, o.logger)
}

// ProcessHotel runs the full pipeline for one hotel and persists the
// result. The returned result is always non-nil.
func (o *Orchestrator) ProcessHotel(ctx context.Context, hotelCode string) *entity.RunResult {
	run := o.buildPipeline().Execute(ctx, pipeline.NewContext(hotelCode))

	result := run.Result()
	o.metrics.HotelsProcessed.Inc()
	o.metrics.PipelineDuration.Observe(result.DurationSecs)
	for _, stepErr := range result.Errors {
		o.metrics.StepErrors.WithLabelValues(stepErr.Step).Inc()
	}

	if err := o.runs.Save(ctx, result); err != nil {
		o.logger.Error("Failed to persist run result",
			"hotelCode", hotelCode,
			"error", err)
	}

	o.logger.Info("Hotel run finished",
		"hotelCode", hotelCode,
		"success", result.Success,
		"durationSeconds", result.DurationSecs,
		"errors", len(result.Errors))

	return result
}

// SetFallbackHotels configures the hotel codes used when the registry is
// empty or unreachable.
func (o *Orchestrator) SetFallbackHotels(codes []string) {
	o.fallbackHotels = codes
}

// hotelCodes resolves the batch from the registry, falling back to the
// configured code list.
func (o *Orchestrator) hotelCodes(ctx context.Context) []string {
	hotels, err := o.hotels.ListActive(ctx)
	if err != nil {
		o.logger.Error("Failed to list active hotels, using fallback list",
			"error", err,
			"fallbackHotels", len(o.fallbackHotels))
		return o.fallbackHotels
	}
	if len(hotels) == 0 {
		if len(o.fallbackHotels) > 0 {
			o.logger.Warn("Registry is empty, using fallback list",
				"fallbackHotels", len(o.fallbackHotels))
		}
		return o.fallbackHotels
	}

	codes := make([]string, 0, len(hotels))
	for _, hotel := range hotels {
		codes = append(codes, hotel.Code)
	}
	return codes
}

// ProcessAll runs the pipeline for every active hotel in the registry,
// bounded by the configured worker count. Returns the per-hotel results.
func (o *Orchestrator) ProcessAll(ctx context.Context) []*entity.RunResult {
	codes := o.hotelCodes(ctx)
	if len(codes) == 0 {
		o.logger.Warn("No hotels to process")
		return nil
	}

	o.logger.Info("Starting batch run", "hotels", len(codes))

	results := make([]*entity.RunResult, len(codes))
	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup

	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = o.ProcessHotel(ctx, code)
		}(i, code)
	}
	wg.Wait()

	succeeded := 0
	for _, result := range results {
		if result != nil && result.Success {
			succeeded++
		}
	}
	o.logger.Info("Batch run finished",
		"hotels", len(codes),
		"succeeded", succeeded,
		"failed", len(codes)-succeeded)

	return results
}
