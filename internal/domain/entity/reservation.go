package entity

import (
	"errors"
	"fmt"
)

// SegmentUnassigned is the sentinel for segment codes the PMS does not map.
const SegmentUnassigned = "UNASSIGNED"

var (
	ErrMissingRecordDate    = errors.New("missing record date range")
	ErrMissingCalendarDate  = errors.New("missing calendar date")
	ErrMissingReservationID = errors.New("missing reservation id")
	ErrInvalidStatus        = errors.New("status outside 0-5")
	ErrNegativeCount        = errors.New("negative pax or room count")
)

// Reservation is one reservation-night in the target schema. The wire
// format is closed: exactly these fields, camelCase aliases, dates as
// ISO strings and recordDate as an open-ended range like "[2021-06-02,)".
type Reservation struct {
	RecordDate            string  `json:"recordDate" bson:"recordDate"`
	CalendarDate          string  `json:"calendarDate" bson:"calendarDate"`
	CalendarDateStart     string  `json:"calendarDateStart" bson:"calendarDateStart"`
	CalendarDateEnd       string  `json:"calendarDateEnd" bson:"calendarDateEnd"`
	CreatedDate           string  `json:"createdDate" bson:"createdDate"`
	Pax                   int     `json:"pax" bson:"pax"`
	ReservationID         string  `json:"reservationId" bson:"reservationId"`
	ReservationIDExternal string  `json:"reservationIdExternal" bson:"reservationIdExternal"`
	RevenueFb             float64 `json:"revenueFb" bson:"revenueFb"`
	RevenueFbInvoice      float64 `json:"revenueFbInvoice" bson:"revenueFbInvoice"`
	RevenueOthers         float64 `json:"revenueOthers" bson:"revenueOthers"`
	RevenueOthersInvoice  float64 `json:"revenueOthersInvoice" bson:"revenueOthersInvoice"`
	RevenueRoom           float64 `json:"revenueRoom" bson:"revenueRoom"`
	RevenueRoomInvoice    float64 `json:"revenueRoomInvoice" bson:"revenueRoomInvoice"`
	Rooms                 int     `json:"rooms" bson:"rooms"`
	Status                int     `json:"status" bson:"status"`
	AgencyCode            string  `json:"agencyCode" bson:"agencyCode"`
	ChannelCode           string  `json:"channelCode" bson:"channelCode"`
	CompanyCode           string  `json:"companyCode" bson:"companyCode"`
	CroCode               string  `json:"croCode" bson:"croCode"`
	GroupCode             string  `json:"groupCode" bson:"groupCode"`
	PackageCode           string  `json:"packageCode" bson:"packageCode"`
	RateCode              string  `json:"rateCode" bson:"rateCode"`
	RoomCode              string  `json:"roomCode" bson:"roomCode"`
	SegmentCode           string  `json:"segmentCode" bson:"segmentCode"`
	SubSegmentCode        string  `json:"subSegmentCode" bson:"subSegmentCode"`
}

// Validate enforces the closed-schema invariants before a reservation is
// admitted into a collection.
func (r Reservation) Validate() error {
	if r.RecordDate == "" {
		return ErrMissingRecordDate
	}
	if r.CalendarDate == "" || r.CalendarDateStart == "" || r.CalendarDateEnd == "" {
		return ErrMissingCalendarDate
	}
	if r.ReservationID == "" || r.ReservationIDExternal == "" {
		return ErrMissingReservationID
	}
	if r.Status < StatusCancelled || r.Status > StatusTentative {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, r.Status)
	}
	if r.Pax < 0 || r.Rooms < 0 {
		return ErrNegativeCount
	}
	return nil
}

// ReservationCollection is an ordered, append-only sequence of reservation
// nights produced by a single run.
type ReservationCollection struct {
	Reservations []Reservation `json:"reservations" bson:"reservations"`
}

// TotalCount returns the number of reservations in the collection.
func (c *ReservationCollection) TotalCount() int {
	return len(c.Reservations)
}

// Append adds a reservation to the end of the collection.
func (c *ReservationCollection) Append(r Reservation) {
	c.Reservations = append(c.Reservations, r)
}
