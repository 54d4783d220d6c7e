package usecase

import (
	"context"
	"fmt"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/internal/transform"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/metrics"
	"hostpms-connector/pkg/utils"
)

// ProcessStatDailyStep extracts the daily-statistics window day by day,
// runs the reconciliation engine over the combined batch and publishes the
// reservation ledger. Single-day fetch failures are logged and skipped so
// one bad date never loses the rest of the window.
type ProcessStatDailyStep struct {
	hostpms     repository.HostPMSRepository
	storage     repository.StorageRepository
	esb         repository.ESBRepository
	transformer *transform.StatDailyTransformer
	metrics     *metrics.Metrics
	logger      logger.Logger

	startOffset int
	endOffset   int
}

// NewProcessStatDailyStep creates the reservation ledger step. The window
// runs from today-startOffset to today-endOffset days, inclusive.
func NewProcessStatDailyStep(
	hostpms repository.HostPMSRepository,
	storage repository.StorageRepository,
	esb repository.ESBRepository,
	m *metrics.Metrics,
	startOffset, endOffset int,
	logger logger.Logger,
) pipeline.Step {
	step := &ProcessStatDailyStep{
		hostpms:     hostpms,
		storage:     storage,
		esb:         esb,
		transformer: transform.NewStatDailyTransformer(logger),
		metrics:     m,
		logger:      logger,
		startOffset: startOffset,
		endOffset:   endOffset,
	}
	return pipeline.NewStep("process_statdaily", false, step.Execute)
}

// WindowDates enumerates the stay-dates the step will extract
func (s *ProcessStatDailyStep) WindowDates(now time.Time) []time.Time {
	start := now.AddDate(0, 0, -s.startOffset)
	end := now.AddDate(0, 0, -s.endOffset)
	return utils.DaysBetween(start, end)
}

// Execute extracts, transforms and publishes the reservation ledger
func (s *ProcessStatDailyStep) Execute(ctx context.Context, run *pipeline.Context) error {
	now := time.Now().UTC()
	dates := s.WindowDates(now)

	var records []entity.StatDailyRecord
	failedDays := 0
	for _, date := range dates {
		dayRecords, err := s.hostpms.GetStatDaily(ctx, run.HotelCode, date)
		if err != nil {
			failedDays++
			s.logger.Warn("Skipping StatDaily day after fetch failure",
				"hotelCode", run.HotelCode,
				"hotelDate", utils.DateString(date),
				"error", err)
			continue
		}
		records = append(records, dayRecords...)
	}

	if len(records) == 0 {
		return fmt.Errorf("process statdaily: no records fetched across %d days (%d failed)",
			len(dates), failedDays)
	}
	run.StatDailyRecords = records

	if _, err := s.storage.UploadRaw(ctx, run.HotelCode, "statdaily", records); err != nil {
		s.logger.Warn("Raw statdaily archival failed",
			"hotelCode", run.HotelCode,
			"error", err)
	}

	collection, stats := s.transformer.TransformBatch(records, run.ConfigResponse, now)
	run.Reservations = collection
	s.metrics.ReservationsCreated.Add(float64(stats.Output))
	s.metrics.FailedTransformations.Add(float64(stats.Invalid))

	// The wire format is a bare ordered array of reservation objects.
	result, err := s.storage.UploadProcessed(ctx, run.HotelCode, "reservations", collection.Reservations)
	if err != nil {
		return fmt.Errorf("upload reservations artifact: %w", err)
	}
	run.AddUpload("reservations", result)

	if err := s.esb.RegisterFile(ctx, run.HotelCode, "reservations", result.URL, result.Key, collection.TotalCount()); err != nil {
		return fmt.Errorf("register reservations artifact: %w", err)
	}
	run.AddNotification("reservations", result.Key)

	run.Stats["statDaily"] = map[string]interface{}{
		"windowDays":     len(dates),
		"failedDays":     failedDays,
		"inputRecords":   stats.InputRecords,
		"groups":         stats.Groups,
		"overlaps":       stats.Overlaps,
		"duplicates":     stats.Duplicates,
		"invalid":        stats.Invalid,
		"invoicePatched": stats.InvoicePatched,
		"reservations":   stats.Output,
	}

	return nil
}
