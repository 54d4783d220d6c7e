package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

// ESBAPIRepository talks to the revenue platform's ESB over OAuth2
// client-credentials
type ESBAPIRepository struct {
	logger     logger.Logger
	client     *http.Client
	baseURL    string
	maxRetries int
}

// NewESBAPIRepository creates a new ESB repository. The supplied client
// must inject bearer tokens (see oauth.ESBOAuth.Client).
func NewESBAPIRepository(client *http.Client, baseURL string, maxRetries int, logger logger.Logger) repository.ESBRepository {
	return &ESBAPIRepository{
		logger:     logger,
		client:     client,
		baseURL:    baseURL,
		maxRetries: maxRetries,
	}
}

// GetHotelParameters fetches the per-hotel import settings
func (r *ESBAPIRepository) GetHotelParameters(ctx context.Context, hotelCode string) (*repository.HotelParameters, error) {
	endpoint := fmt.Sprintf("%s/hotels/%s/parameters", r.baseURL, url.PathEscape(hotelCode))

	body, err := r.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch hotel parameters for %s: %w", hotelCode, err)
	}

	var params repository.HotelParameters
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, fmt.Errorf("decode hotel parameters for %s: %w", hotelCode, err)
	}

	r.logger.Info("Fetched hotel parameters",
		"hotelCode", hotelCode,
		"lastImportDate", params.LastImportDate)

	return &params, nil
}

// RegisterFile announces a stored artifact to the ESB ingestion endpoint
func (r *ESBAPIRepository) RegisterFile(ctx context.Context, hotelCode, fileType, fileURL, fileKey string, recordCount int) error {
	payload := map[string]interface{}{
		"hotelCode":   hotelCode,
		"fileType":    fileType,
		"fileUrl":     fileURL,
		"fileKey":     fileKey,
		"recordCount": recordCount,
	}

	endpoint := fmt.Sprintf("%s/files", r.baseURL)
	if _, err := r.do(ctx, http.MethodPost, endpoint, payload); err != nil {
		return fmt.Errorf("register file %s for %s: %w", fileKey, hotelCode, err)
	}

	r.logger.Info("Registered file with ESB",
		"hotelCode", hotelCode,
		"fileType", fileType,
		"fileKey", fileKey,
		"recordCount", recordCount)

	return nil
}

// UpdateImportDate advances the hotel's last-import handshake date
func (r *ESBAPIRepository) UpdateImportDate(ctx context.Context, hotelCode string, importDate time.Time) error {
	payload := map[string]interface{}{
		"lastImportDate": utils.DateString(importDate),
	}

	endpoint := fmt.Sprintf("%s/hotels/%s/parameters", r.baseURL, url.PathEscape(hotelCode))
	if _, err := r.do(ctx, http.MethodPatch, endpoint, payload); err != nil {
		return fmt.Errorf("update import date for %s: %w", hotelCode, err)
	}

	r.logger.Info("Updated last import date",
		"hotelCode", hotelCode,
		"importDate", utils.DateString(importDate))

	return nil
}

func (r *ESBAPIRepository) do(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	var requestBody []byte
	if payload != nil {
		var err error
		requestBody, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			r.logger.Warn("Retrying ESB request",
				"endpoint", endpoint,
				"attempt", attempt,
				"backoff", backoff.String(),
				"error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		var reader io.Reader
		if requestBody != nil {
			reader = bytes.NewReader(requestBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := r.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("ESB returned status %d", resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("ESB returned status %d: %s", resp.StatusCode, string(body))
		}
	}

	return nil, fmt.Errorf("exhausted %d retries: %w", r.maxRetries, lastErr)
}
