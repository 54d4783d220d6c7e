package transform

import (
	"fmt"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

type invoiceKey struct {
	Date       string
	ExternalID string
	ResID      string
}

type noShowKey struct {
	Date  string
	ResID string
}

// ApplyInvoiceCorrections re-derives the invoiced room revenue straight
// from the raw revenue lines and patches it onto the matching materialized
// nights. Regular nights match on (date, external id, reservation id);
// no-show nights post under arbitrary guest details, so they match on
// (date, reservation id) alone. Only revenueRoomInvoice is overwritten.
// Nights in skip are never patched: zeroed overlap records must stay zero.
// Returns the number of patched records.
func ApplyInvoiceCorrections(
	collection *entity.ReservationCollection,
	records []entity.StatDailyRecord,
	classes ChargeClasses,
	skip map[nightKey]bool,
	log logger.Logger,
) int {
	regular := make(map[invoiceKey]float64)
	noShow := make(map[noShowKey]float64)

	for _, record := range records {
		if !record.IsRevenue() {
			continue
		}
		date := utils.DateString(record.HotelDate.Time)
		resID := fmt.Sprintf("%d", record.ResID)

		switch classes.Class(record.ChargeCode) {
		case ChargeRoom:
			extID := fmt.Sprintf("%d-%d", record.ResNo, record.GlobalResGuestID)
			if record.MasterDetail > 0 {
				extID = fmt.Sprintf("%s-%d", extID, record.MasterDetail)
			}
			regular[invoiceKey{Date: date, ExternalID: extID, ResID: resID}] += record.RevenueNet
		case ChargeNoShow:
			noShow[noShowKey{Date: date, ResID: resID}] += record.RevenueNet
		}
	}

	patched := 0
	for i := range collection.Reservations {
		r := &collection.Reservations[i]
		if skip[nightKey{ExternalID: r.ReservationIDExternal, CalendarDate: r.CalendarDate}] {
			continue
		}
		if r.Status == entity.StatusNoShow {
			total, ok := noShow[noShowKey{Date: r.CalendarDate, ResID: r.ReservationID}]
			if ok && total != r.RevenueRoomInvoice {
				r.RevenueRoomInvoice = total
				patched++
			}
			continue
		}
		key := invoiceKey{Date: r.CalendarDate, ExternalID: r.ReservationIDExternal, ResID: r.ReservationID}
		if total, ok := regular[key]; ok && total != r.RevenueRoomInvoice {
			r.RevenueRoomInvoice = total
			patched++
		}
	}

	if patched > 0 {
		log.Info("Patched invoiced room revenue", "records", patched)
	}
	return patched
}
