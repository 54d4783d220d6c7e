package transform

import (
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
)

// ConsolidatedNight is the merged result for one reservation-day key:
// net occupancy and revenue folded from every record sharing the key.
type ConsolidatedNight struct {
	ResNo        int64
	ResID        int64
	GuestID      int64
	DetailID     int64
	MasterDetail int64

	HotelDate time.Time
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedOn time.Time

	Rooms    int
	Pax      int
	RoomCode string

	RevenueRoom   float64
	RevenueOthers float64

	Status      int
	IsNoShow    bool
	IsCancelled bool

	// Overlap resolution marks, set by ResolveOverlaps.
	Overlap           bool
	MultiDetailMaster bool

	// Diagnostic: the group had neither occupancy nor eligible revenue.
	MissingData bool

	Agency     string
	Channel    string
	Company    string
	Cro        string
	Group      string
	Pack       string
	RatePlan   string
	Segment    string
	SubSegment string
}

// Consolidate folds one reservation-day group into a single night.
// Room-nights and pax are summed across ALL occupancy records; revenue is
// classified once per record before summing, no-show amounts count as room
// revenue and force NO_SHOW status, and explicit cancellation zeroes the
// room count while keeping any summed revenue.
func Consolidate(records []entity.StatDailyRecord, classes ChargeClasses, log logger.Logger) ConsolidatedNight {
	var occupancy []entity.StatDailyRecord
	var revenue []entity.StatDailyRecord

	for _, record := range records {
		switch {
		case record.IsOccupancy():
			occupancy = append(occupancy, record)
		case record.IsRevenue() && classes.Eligible(record.ChargeCode):
			revenue = append(revenue, record)
		}
	}

	base := records[0]
	switch {
	case len(occupancy) > 0:
		base = occupancy[0]
	case len(revenue) > 0:
		base = revenue[0]
	}

	night := ConsolidatedNight{
		ResNo:        base.ResNo,
		ResID:        base.ResID,
		GuestID:      base.GlobalResGuestID,
		DetailID:     base.DetailID,
		MasterDetail: base.MasterDetail,
		HotelDate:    base.HotelDate.Time,
		CheckIn:      base.CheckIn.Time,
		CheckOut:     base.CheckOut.Time,
		CreatedOn:    base.CreatedOn.Time,
		Agency:       base.Agency,
		Channel:      base.ChannelDesc,
		Company:      base.Company,
		Cro:          base.Cro,
		Group:        base.GroupName,
		Pack:         base.Pack,
		RatePlan:     base.PriceList,
		Segment:      base.SegmentDesc,
		SubSegment:   base.SubSegmentDesc,
	}

	// Multiple occupancy lines can coexist for one reservation-night and
	// must all be counted.
	if len(occupancy) > 0 {
		for _, occ := range occupancy {
			night.Rooms += occ.RoomNights
			night.Pax += occ.Pax
		}
		night.RoomCode = occupancy[0].Category
	}

	for _, rev := range revenue {
		switch classes.Class(rev.ChargeCode) {
		case ChargeNoShow:
			night.RevenueRoom += rev.RevenueNet
			night.IsNoShow = true
		case ChargeRoom:
			night.RevenueRoom += rev.RevenueNet
		default:
			night.RevenueOthers += rev.RevenueNet
		}
	}

	if night.IsNoShow {
		night.Status = entity.StatusNoShow
	} else {
		night.Status = entity.MapResStatus(base.ResStatus)
	}

	// Explicit cancellation zeroes occupancy, never revenue.
	if base.ResStatus == entity.ResStatusCXL {
		night.Rooms = 0
		night.IsCancelled = true
	}

	if len(occupancy) == 0 && len(revenue) == 0 {
		night.MissingData = true
		log.Warn("Reservation-day group has no occupancy and no eligible revenue",
			"resNo", base.ResNo,
			"resId", base.ResID,
			"hotelDate", base.HotelDate.Format("2006-01-02"))
	}

	return night
}
