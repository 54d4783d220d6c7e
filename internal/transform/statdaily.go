package transform

import (
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
)

// StatDailyStats summarizes one transformation batch for run reporting.
type StatDailyStats struct {
	InputRecords   int `json:"inputRecords" bson:"inputRecords"`
	Dropped        int `json:"dropped" bson:"dropped"`
	Groups         int `json:"groups" bson:"groups"`
	Overlaps       int `json:"overlaps" bson:"overlaps"`
	Duplicates     int `json:"duplicates" bson:"duplicates"`
	Invalid        int `json:"invalid" bson:"invalid"`
	InvoicePatched int `json:"invoicePatched" bson:"invoicePatched"`
	Output         int `json:"output" bson:"output"`
}

// StatDailyTransformer turns raw daily-statistics batches into the
// canonical reservation ledger.
type StatDailyTransformer struct {
	log logger.Logger
}

// NewStatDailyTransformer creates a transformer logging through log.
func NewStatDailyTransformer(log logger.Logger) *StatDailyTransformer {
	return &StatDailyTransformer{log: log}
}

// TransformBatch runs the full pipeline over one hotel-day batch: charge
// classification, reservation-day grouping, consolidation, overlap
// resolution, materialization, duplicate suppression and invoice
// correction. Individual bad records are dropped with warnings; the batch
// itself never fails.
func (t *StatDailyTransformer) TransformBatch(
	records []entity.StatDailyRecord,
	config *entity.HotelConfigResponse,
	now time.Time,
) (*entity.ReservationCollection, StatDailyStats) {
	stats := StatDailyStats{InputRecords: len(records)}

	classes := ExtractChargeClasses(config, t.log)
	grouped := GroupByReservationDay(records, t.log)
	stats.Dropped = grouped.Dropped
	stats.Groups = len(grouped.Keys)

	nights := make([]ConsolidatedNight, 0, len(grouped.Keys))
	for _, key := range grouped.Keys {
		nights = append(nights, Consolidate(grouped.Groups[key], classes, t.log))
	}

	stats.Overlaps = ResolveOverlaps(nights, t.log)

	var hotelLocal time.Time
	if config != nil {
		hotelLocal = config.HotelInfo.LocalTime.Time
	}

	collection := &entity.ReservationCollection{}
	ledger := NewDedupLedger()
	overlapNights := make(map[nightKey]bool)
	for _, night := range nights {
		reservation, err := Materialize(night, hotelLocal, now)
		if err != nil {
			stats.Invalid++
			t.log.Warn("Skipping reservation-night that failed materialization",
				"resNo", night.ResNo,
				"error", err)
			continue
		}
		if !ledger.Admit(reservation.ReservationIDExternal, reservation.CalendarDate) {
			stats.Duplicates++
			t.log.Warn("Suppressing duplicate reservation-night",
				"reservationIdExternal", reservation.ReservationIDExternal,
				"calendarDate", reservation.CalendarDate)
			continue
		}
		if night.Overlap {
			overlapNights[nightKey{
				ExternalID:   reservation.ReservationIDExternal,
				CalendarDate: reservation.CalendarDate,
			}] = true
		}
		collection.Append(reservation)
	}

	stats.InvoicePatched = ApplyInvoiceCorrections(collection, records, classes, overlapNights, t.log)
	stats.Output = collection.TotalCount()

	t.log.Info("StatDaily batch transformed",
		"inputRecords", stats.InputRecords,
		"groups", stats.Groups,
		"overlaps", stats.Overlaps,
		"duplicates", stats.Duplicates,
		"invoicePatched", stats.InvoicePatched,
		"output", stats.Output)

	return collection, stats
}
