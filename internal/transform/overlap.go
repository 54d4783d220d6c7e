package transform

import (
	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

type reservationKey struct {
	ResNo   int64
	ResID   int64
	GuestID int64
}

// ResolveOverlaps handles reservations split into a master line
// (master-detail index 0) and one or more child detail lines sharing
// calendar dates. Child nights whose stay-date intersects the master's
// dates are marked as overlap records: they materialize with zero rooms
// and zero revenue under a detail-qualified external id, so a night both
// lines claim is never counted twice. Masters in multi-detail groups are
// marked so the materializer keeps their source room count.
func ResolveOverlaps(nights []ConsolidatedNight, log logger.Logger) int {
	byReservation := make(map[reservationKey][]int)
	for i, night := range nights {
		key := reservationKey{ResNo: night.ResNo, ResID: night.ResID, GuestID: night.GuestID}
		byReservation[key] = append(byReservation[key], i)
	}

	overlaps := 0
	for key, indexes := range byReservation {
		if len(indexes) < 2 {
			continue
		}

		masterDates := make(map[string]bool)
		hasChildren := false
		for _, i := range indexes {
			if nights[i].MasterDetail == 0 {
				masterDates[utils.DateString(nights[i].HotelDate)] = true
			} else {
				hasChildren = true
			}
		}
		if !hasChildren || len(masterDates) == 0 {
			continue
		}

		for _, i := range indexes {
			night := &nights[i]
			if night.MasterDetail == 0 {
				night.MultiDetailMaster = true
				continue
			}
			if masterDates[utils.DateString(night.HotelDate)] {
				night.Overlap = true
				overlaps++
				log.Info("Marking overlapping child night as zero record",
					"resNo", key.ResNo,
					"detailId", night.DetailID,
					"hotelDate", utils.DateString(night.HotelDate))
			}
		}
	}

	return overlaps
}

// zeroRevenue blanks every revenue field of an overlap record.
func zeroRevenue(r *entity.Reservation) {
	r.RevenueRoom = 0
	r.RevenueRoomInvoice = 0
	r.RevenueFb = 0
	r.RevenueFbInvoice = 0
	r.RevenueOthers = 0
	r.RevenueOthersInvoice = 0
	r.Rooms = 0
}
