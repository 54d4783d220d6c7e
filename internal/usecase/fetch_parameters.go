package usecase

import (
	"context"
	"fmt"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/pkg/logger"
)

// FetchParametersStep retrieves the per-hotel import settings from the ESB
// before any extraction starts. It is the only required step: without the
// handshake the run cannot proceed.
type FetchParametersStep struct {
	esb    repository.ESBRepository
	logger logger.Logger
}

// NewFetchParametersStep creates the import-parameter handshake step
func NewFetchParametersStep(esb repository.ESBRepository, logger logger.Logger) pipeline.Step {
	step := &FetchParametersStep{esb: esb, logger: logger}
	return pipeline.NewStep("fetch_parameters", true, step.Execute)
}

// Execute loads the hotel parameters into the run context
func (s *FetchParametersStep) Execute(ctx context.Context, run *pipeline.Context) error {
	params, err := s.esb.GetHotelParameters(ctx, run.HotelCode)
	if err != nil {
		return fmt.Errorf("fetch parameters: %w", err)
	}

	run.LastImportDate = params.LastImportDate
	run.Stats["parameters"] = map[string]interface{}{
		"lastImportDate": params.LastImportDate,
	}

	s.logger.Info("Import parameters loaded",
		"hotelCode", run.HotelCode,
		"lastImportDate", params.LastImportDate)

	return nil
}
