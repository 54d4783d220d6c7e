package transform

import (
	"fmt"
	"strings"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/utils"
)

// segmentOrDefault normalizes a segment code, falling back to the
// UNASSIGNED sentinel for empty values.
func segmentOrDefault(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return entity.SegmentUnassigned
	}
	return trimmed
}

// packageCode extracts the package code from the Pack field, which arrives
// as "AP|RO" style pairs.
func packageCode(pack string) string {
	trimmed := strings.TrimSpace(pack)
	if trimmed == "" {
		return entity.SegmentUnassigned
	}
	return segmentOrDefault(strings.Split(trimmed, "|")[0])
}

// externalID builds the external reservation id. Overlap records carry the
// detail-qualified form; multi-detail lines append the master-detail index.
func externalID(night ConsolidatedNight) string {
	if night.Overlap {
		return fmt.Sprintf("%d-%d-%d", night.ResNo, night.GuestID, night.DetailID)
	}
	if night.MasterDetail > 0 {
		return fmt.Sprintf("%d-%d-%d", night.ResNo, night.GuestID, night.MasterDetail)
	}
	return fmt.Sprintf("%d-%d", night.ResNo, night.GuestID)
}

// Materialize maps a consolidated night into the canonical reservation
// record. hotelLocal is the hotel's local clock when known (zero value
// otherwise); now anchors the valid-as-of range when it is not.
func Materialize(night ConsolidatedNight, hotelLocal, now time.Time) (entity.Reservation, error) {
	var recordStart time.Time
	if !hotelLocal.IsZero() {
		recordStart = utils.LaterDate(night.CheckIn, hotelLocal)
	} else {
		recordStart = utils.DateOnly(now)
	}

	rooms := night.Rooms
	postCheckout := !night.CheckOut.IsZero() &&
		!utils.DateOnly(night.HotelDate).Before(utils.DateOnly(night.CheckOut))

	// Post-checkout charges and no-shows occupy nothing; their revenue is
	// retained. Multi-detail masters keep the room count from source data.
	if night.Status == entity.StatusNoShow {
		rooms = 0
	}
	if postCheckout && !night.MultiDetailMaster {
		rooms = 0
	}

	reservation := entity.Reservation{
		RecordDate:            utils.OpenEndedRange(recordStart),
		CalendarDate:          utils.DateString(night.HotelDate),
		CalendarDateStart:     utils.DateString(night.CheckIn),
		CalendarDateEnd:       utils.DateString(night.CheckOut),
		CreatedDate:           utils.DateString(night.CreatedOn),
		Pax:                   night.Pax,
		ReservationID:         fmt.Sprintf("%d", night.ResID),
		ReservationIDExternal: externalID(night),
		RevenueOthers:         night.RevenueOthers,
		RevenueOthersInvoice:  night.RevenueOthers,
		RevenueRoom:           night.RevenueRoom,
		RevenueRoomInvoice:    night.RevenueRoom,
		Rooms:                 rooms,
		Status:                night.Status,
		AgencyCode:            segmentOrDefault(night.Agency),
		ChannelCode:           segmentOrDefault(night.Channel),
		CompanyCode:           segmentOrDefault(night.Company),
		CroCode:               segmentOrDefault(night.Cro),
		GroupCode:             segmentOrDefault(night.Group),
		PackageCode:           packageCode(night.Pack),
		RateCode:              segmentOrDefault(night.RatePlan),
		RoomCode:              segmentOrDefault(night.RoomCode),
		SegmentCode:           segmentOrDefault(night.Segment),
		SubSegmentCode:        segmentOrDefault(night.SubSegment),
	}

	if night.Overlap {
		zeroRevenue(&reservation)
	}

	if err := reservation.Validate(); err != nil {
		return entity.Reservation{}, fmt.Errorf("materialize reservation %s/%s: %w",
			reservation.ReservationIDExternal, reservation.CalendarDate, err)
	}

	return reservation, nil
}
