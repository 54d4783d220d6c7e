package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

// HostPMSAPIRepository calls the Host PMS extraction API behind the
// APIM gateway
type HostPMSAPIRepository struct {
	logger          logger.Logger
	client          *http.Client
	baseURL         string
	subscriptionKey string
	maxRetries      int
}

// NewHostPMSAPIRepository creates a new Host PMS API repository
func NewHostPMSAPIRepository(baseURL, subscriptionKey string, timeout time.Duration, maxRetries int, logger logger.Logger) repository.HostPMSRepository {
	return &HostPMSAPIRepository{
		logger:          logger,
		client:          &http.Client{Timeout: timeout},
		baseURL:         baseURL,
		subscriptionKey: subscriptionKey,
		maxRetries:      maxRetries,
	}
}

// GetHotelConfig fetches the configuration payload for one hotel
func (r *HostPMSAPIRepository) GetHotelConfig(ctx context.Context, hotelCode string) (*entity.HotelConfigResponse, error) {
	endpoint := fmt.Sprintf("%s/config?hotelCode=%s", r.baseURL, url.QueryEscape(hotelCode))

	body, err := r.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch hotel config for %s: %w", hotelCode, err)
	}

	var response entity.HotelConfigResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode hotel config for %s: %w", hotelCode, err)
	}

	r.logger.Info("Fetched hotel config",
		"hotelCode", hotelCode,
		"configItems", len(response.ConfigInfo))

	return &response, nil
}

// GetStatDaily fetches the daily-statistics batch for one hotel-date
func (r *HostPMSAPIRepository) GetStatDaily(ctx context.Context, hotelCode string, hotelDate time.Time) ([]entity.StatDailyRecord, error) {
	endpoint := fmt.Sprintf("%s/statdaily?hotelCode=%s&hotelDate=%s",
		r.baseURL, url.QueryEscape(hotelCode), utils.DateString(hotelDate))

	body, err := r.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch statdaily for %s/%s: %w", hotelCode, utils.DateString(hotelDate), err)
	}

	var records []entity.StatDailyRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode statdaily for %s: %w", hotelCode, err)
	}

	return records, nil
}

// get performs a GET with subscription-key auth and exponential backoff on
// transient failures
func (r *HostPMSAPIRepository) get(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			r.logger.Warn("Retrying Host PMS request",
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

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", r.subscriptionKey)
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
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("host API returned status %d", resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("host API returned status %d: %s", resp.StatusCode, string(body))
		}
	}

	return nil, fmt.Errorf("exhausted %d retries: %w", r.maxRetries, lastErr)
}
