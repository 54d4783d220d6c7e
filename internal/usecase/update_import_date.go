package usecase

import (
	"context"
	"fmt"
	"time"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

// UpdateImportDateStep writes the new import date back to the ESB once the
// reservation ledger has been published. A run that produced no ledger
// keeps the previous handshake date.
type UpdateImportDateStep struct {
	esb    repository.ESBRepository
	logger logger.Logger
}

// NewUpdateImportDateStep creates the import-date writeback step
func NewUpdateImportDateStep(esb repository.ESBRepository, logger logger.Logger) pipeline.Step {
	step := &UpdateImportDateStep{esb: esb, logger: logger}
	return pipeline.NewStep("update_import_date", false, step.Execute)
}

// Execute advances the hotel's last-import date
func (s *UpdateImportDateStep) Execute(ctx context.Context, run *pipeline.Context) error {
	if run.Reservations == nil {
		return fmt.Errorf("update import date: no reservation ledger produced")
	}

	importDate := time.Now().UTC()
	if err := s.esb.UpdateImportDate(ctx, run.HotelCode, importDate); err != nil {
		return fmt.Errorf("update import date: %w", err)
	}

	s.logger.Info("Import date advanced",
		"hotelCode", run.HotelCode,
		"previousImportDate", run.LastImportDate,
		"importDate", utils.DateString(importDate))

	return nil
}
