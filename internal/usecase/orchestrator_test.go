package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/metrics"
)

// Shared across tests: promauto registers into the default registry, so
// metrics must be created exactly once per test binary.
var testMetrics = metrics.NewMetrics("test")

func testLogger() logger.Logger {
	return logger.NewLogger("error")
}

type fakeHostPMS struct {
	mu        sync.Mutex
	config    *entity.HotelConfigResponse
	configErr error
	statDaily map[string][]entity.StatDailyRecord
	statErr   error
	statCalls int
}

func (f *fakeHostPMS) GetHotelConfig(ctx context.Context, hotelCode string) (*entity.HotelConfigResponse, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	return f.config, nil
}

func (f *fakeHostPMS) GetStatDaily(ctx context.Context, hotelCode string, hotelDate time.Time) ([]entity.StatDailyRecord, error) {
	f.mu.Lock()
	f.statCalls++
	f.mu.Unlock()
	if f.statErr != nil {
		return nil, f.statErr
	}
	return f.statDaily[hotelDate.Format("2006-01-02")], nil
}

type fakeESB struct {
	mu          sync.Mutex
	paramsErr   error
	registered  []string
	importDates []string
}

func (f *fakeESB) GetHotelParameters(ctx context.Context, hotelCode string) (*repository.HotelParameters, error) {
	if f.paramsErr != nil {
		return nil, f.paramsErr
	}
	return &repository.HotelParameters{LastImportDate: "2024-03-01"}, nil
}

func (f *fakeESB) RegisterFile(ctx context.Context, hotelCode, fileType, fileURL, fileKey string, recordCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, fileType)
	return nil
}

func (f *fakeESB) UpdateImportDate(ctx context.Context, hotelCode string, importDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.importDates = append(f.importDates, importDate.Format("2006-01-02"))
	return nil
}

type fakeStorage struct {
	mu           sync.Mutex
	processedErr error
	raw          []string
	processed    []string
}

func (f *fakeStorage) UploadRaw(ctx context.Context, hotelCode, dataType string, data interface{}) (entity.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raw = append(f.raw, dataType)
	return entity.UploadResult{Key: dataType + "-raw", URL: "s3://raw/" + dataType}, nil
}

func (f *fakeStorage) UploadProcessed(ctx context.Context, hotelCode, dataType string, data interface{}) (entity.UploadResult, error) {
	if f.processedErr != nil {
		return entity.UploadResult{}, f.processedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processed = append(f.processed, dataType)
	key := fmt.Sprintf("%s/%s.json", hotelCode, dataType)
	return entity.UploadResult{Key: key, URL: "s3://" + dataType + "/" + key}, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	sendErr error
	sent    []entity.Notification
}

func (f *fakeNotifier) Send(ctx context.Context, notification entity.Notification) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification)
	return fmt.Sprintf("msg-%d", len(f.sent)), nil
}

type fakeHotels struct {
	hotels []entity.Hotel
}

func (f *fakeHotels) GetByCode(ctx context.Context, code string) (*entity.Hotel, error) {
	for _, hotel := range f.hotels {
		if hotel.Code == code {
			return &hotel, nil
		}
	}
	return nil, errors.New("hotel not found")
}

func (f *fakeHotels) ListActive(ctx context.Context) ([]entity.Hotel, error) {
	return f.hotels, nil
}

type fakeRuns struct {
	mu    sync.Mutex
	saved []*entity.RunResult
}

func (f *fakeRuns) Save(ctx context.Context, result *entity.RunResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, result)
	return nil
}

func (f *fakeRuns) FindLatestByHotel(ctx context.Context, hotelCode string) (*entity.RunResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].HotelCode == hotelCode {
			return f.saved[i], nil
		}
	}
	return nil, errors.New("no runs")
}

func statDailyFixture(date string) []entity.StatDailyRecord {
	parsed, _ := time.Parse("2006-01-02", date)
	stay := entity.APITime{Time: parsed}
	return []entity.StatDailyRecord{
		{
			RecordType:       entity.RecordTypeHistoryOccupancy,
			HotelDate:        stay,
			ResNo:            1001,
			ResID:            9001,
			GlobalResGuestID: 55,
			CheckIn:          stay,
			CheckOut:         entity.APITime{Time: parsed.AddDate(0, 0, 2)},
			RoomNights:       1,
			Pax:              2,
		},
		{
			RecordType:       entity.RecordTypeHistoryRevenue,
			HotelDate:        stay,
			ResNo:            1001,
			ResID:            9001,
			GlobalResGuestID: 55,
			CheckIn:          stay,
			CheckOut:         entity.APITime{Time: parsed.AddDate(0, 0, 2)},
			ChargeCode:       "ALOJ",
			RevenueNet:       120,
		},
	}
}

func newTestOrchestrator(pms *fakeHostPMS, esb *fakeESB, storage *fakeStorage, notifier *fakeNotifier, hotels *fakeHotels, runs *fakeRuns) *Orchestrator {
	return NewOrchestrator(pms, esb, storage, notifier, hotels, runs,
		testMetrics, 2, 1, 2, testLogger())
}

func TestProcessHotelHappyPath(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	twoDaysAgo := time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02")

	pms := &fakeHostPMS{
		config: &entity.HotelConfigResponse{
			HotelInfo: entity.HotelInfo{HotelCode: "HTL1", HotelName: "Harbour View"},
			ConfigInfo: []entity.ConfigItem{
				{ConfigType: entity.ConfigTypeCategory, Code: "DBL", Description: "Double", Inventory: 40, Active: true},
				{ConfigType: entity.ConfigTypeCharge, Code: "ALOJ", SalesGroup: "ROOM", Active: true},
			},
		},
		statDaily: map[string][]entity.StatDailyRecord{
			yesterday:  statDailyFixture(yesterday),
			twoDaysAgo: nil,
		},
	}
	esb := &fakeESB{}
	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	runs := &fakeRuns{}

	orchestrator := newTestOrchestrator(pms, esb, storage, notifier, &fakeHotels{}, runs)
	result := orchestrator.ProcessHotel(context.Background(), "HTL1")

	if !result.Success {
		t.Fatalf("run failed: %+v", result.Errors)
	}
	for _, dataType := range []string{"config", "segments", "inventory", "reservations"} {
		if _, ok := result.Uploads[dataType]; !ok {
			t.Fatalf("missing upload for %q, have %v", dataType, result.Uploads)
		}
	}
	if len(result.Notifications) != 4 {
		t.Fatalf("got %d notifications, want 4", len(result.Notifications))
	}
	for _, notification := range result.Notifications {
		if notification.MessageID == "" {
			t.Fatalf("notification %q has no message id", notification.FileType)
		}
	}
	if len(esb.importDates) != 1 {
		t.Fatalf("import date updated %d times, want 1", len(esb.importDates))
	}
	if len(runs.saved) != 1 {
		t.Fatalf("run result not persisted")
	}
	if pms.statCalls != 2 {
		t.Fatalf("got %d statdaily fetches, want one per window day", pms.statCalls)
	}
}

func TestProcessHotelRequiredStepFailureStopsRun(t *testing.T) {
	esb := &fakeESB{paramsErr: errors.New("esb down")}
	storage := &fakeStorage{}
	runs := &fakeRuns{}

	orchestrator := newTestOrchestrator(&fakeHostPMS{}, esb, storage, &fakeNotifier{}, &fakeHotels{}, runs)
	result := orchestrator.ProcessHotel(context.Background(), "HTL1")

	if result.Success {
		t.Fatalf("run succeeded despite failed handshake")
	}
	if len(result.Errors) != 1 || result.Errors[0].Step != "fetch_parameters" {
		t.Fatalf("errors = %+v", result.Errors)
	}
	if len(storage.processed) != 0 {
		t.Fatalf("steps ran after required failure: %v", storage.processed)
	}
	if len(runs.saved) != 1 {
		t.Fatalf("failed run result not persisted")
	}
}

func TestProcessHotelOptionalFailuresContinue(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	pms := &fakeHostPMS{
		configErr: errors.New("config endpoint down"),
		statDaily: map[string][]entity.StatDailyRecord{
			yesterday: statDailyFixture(yesterday),
		},
	}
	esb := &fakeESB{}
	notifier := &fakeNotifier{}

	orchestrator := newTestOrchestrator(pms, esb, &fakeStorage{}, notifier, &fakeHotels{}, &fakeRuns{})
	result := orchestrator.ProcessHotel(context.Background(), "HTL1")

	if result.Success {
		t.Fatalf("run succeeded despite optional failures")
	}

	// Config, segments and inventory fail; statdaily still runs on the
	// default charge codes and the ledger still ships.
	if _, ok := result.Uploads["reservations"]; !ok {
		t.Fatalf("reservations not published, uploads = %v", result.Uploads)
	}
	failedSteps := map[string]bool{}
	for _, stepErr := range result.Errors {
		failedSteps[stepErr.Step] = true
	}
	for _, step := range []string{"process_config", "process_segments", "process_inventory"} {
		if !failedSteps[step] {
			t.Fatalf("step %q did not record its failure: %+v", step, result.Errors)
		}
	}
	if failedSteps["process_statdaily"] || failedSteps["send_notifications"] {
		t.Fatalf("downstream steps failed unexpectedly: %+v", result.Errors)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("got %d notifications, want 1 for the ledger", len(notifier.sent))
	}
}

func TestProcessAllRunsEveryActiveHotel(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	pms := &fakeHostPMS{
		statDaily: map[string][]entity.StatDailyRecord{
			yesterday: statDailyFixture(yesterday),
		},
	}
	hotels := &fakeHotels{hotels: []entity.Hotel{
		{Code: "HTL1", Active: true},
		{Code: "HTL2", Active: true},
		{Code: "HTL3", Active: true},
	}}
	runs := &fakeRuns{}

	orchestrator := newTestOrchestrator(pms, &fakeESB{}, &fakeStorage{}, &fakeNotifier{}, hotels, runs)
	results := orchestrator.ProcessAll(context.Background())

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if len(runs.saved) != 3 {
		t.Fatalf("persisted %d run results, want 3", len(runs.saved))
	}
	seen := map[string]bool{}
	for _, result := range results {
		if result == nil {
			t.Fatalf("nil result in batch")
		}
		seen[result.HotelCode] = true
	}
	if len(seen) != 3 {
		t.Fatalf("hotel codes collapsed: %v", seen)
	}
}
