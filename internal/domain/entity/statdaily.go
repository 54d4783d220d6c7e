package entity

import (
	"fmt"
	"strings"
	"time"
)

// Record types returned by the Host PMS StatDaily endpoint.
const (
	RecordTypeHistoryOccupancy  = "HISTORY-OCCUPANCY"
	RecordTypeForecastOccupancy = "FORECAST-OCCUPANCY"
	RecordTypeHistoryRevenue    = "HISTORY-REVENUE"
	RecordTypeForecastRevenue   = "FORECAST-REVENUE"
)

// APITime accepts the timestamp shapes the Host PMS API emits: RFC3339,
// bare "2006-01-02T15:04:05" and plain dates.
type APITime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON parses any of the supported timestamp layouts.
func (t *APITime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}

// MarshalJSON renders the timestamp in RFC3339.
func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// StatDailyRecord is a single statistical line for one reservation on one
// stay-date. The API returns several entries per reservation-night with
// different RecordTypes and ChargeCodes: revenue amounts are meaningful only
// on REVENUE records, occupancy counts only on OCCUPANCY records.
type StatDailyRecord struct {
	RowNumber        int     `json:"RowNumber"`
	TotalRows        int     `json:"TotalRows"`
	RecordType       string  `json:"RecordType"`
	HotelDate        APITime `json:"HotelDate"`
	ResNo            int64   `json:"ResNo"`
	ResID            int64   `json:"ResId"`
	DetailID         int64   `json:"DetailId"`
	MasterDetail     int64   `json:"MasterDetail"`
	GlobalResGuestID int64   `json:"GlobalResGuestId"`
	CreatedOn        APITime `json:"CreatedOn"`
	CheckIn          APITime `json:"CheckIn"`
	CheckOut         APITime `json:"CheckOut"`
	OptionDate       APITime `json:"OptionDate"`
	Category         string  `json:"Category"`
	ComplexCode      string  `json:"ComplexCode"`
	RoomName         string  `json:"RoomName"`
	Agency           string  `json:"Agency"`
	Company          string  `json:"Company"`
	Cro              string  `json:"Cro"`
	GroupName        string  `json:"Groupname"`
	ResStatus        int     `json:"ResStatus"`
	GuestID          int64   `json:"Guest_Id"`
	CountryISOCode   string  `json:"CountryIsoCode"`
	NationalityISO   string  `json:"NationalityIsoCode"`
	Pack             string  `json:"Pack"`
	PriceList        string  `json:"PriceList"`
	SegmentDesc      string  `json:"SegmentDescription"`
	SubSegmentDesc   string  `json:"SubSegmentDescription"`
	ChannelDesc      string  `json:"ChannelDescription"`
	Pax              int     `json:"Pax"`
	ChildrenType1    int     `json:"ChildrenType1"`
	ChildrenType2    int     `json:"ChildrenType2"`
	ChildrenType3    int     `json:"ChildrenType3"`
	RoomNights       int     `json:"RoomNights"`
	ChargeCode       string  `json:"ChargeCode"`
	SalesGroup       int     `json:"SalesGroup"`
	SalesGroupDesc   string  `json:"SalesGroupDesc"`
	RevenueGross     float64 `json:"RevenueGross"`
	RevenueNet       float64 `json:"RevenueNet"`
}

// IsOccupancy reports whether this line carries occupancy counts.
func (r StatDailyRecord) IsOccupancy() bool {
	return r.RecordType == RecordTypeHistoryOccupancy || r.RecordType == RecordTypeForecastOccupancy
}

// IsRevenue reports whether this line carries revenue amounts.
func (r StatDailyRecord) IsRevenue() bool {
	return r.RecordType == RecordTypeHistoryRevenue || r.RecordType == RecordTypeForecastRevenue
}

// Valid rejects records that do not fit the expected shape. Such records
// are dropped with a warning, never aborting the batch.
func (r StatDailyRecord) Valid() error {
	switch r.RecordType {
	case RecordTypeHistoryOccupancy, RecordTypeForecastOccupancy,
		RecordTypeHistoryRevenue, RecordTypeForecastRevenue:
	default:
		return fmt.Errorf("unknown record type %q", r.RecordType)
	}
	if r.HotelDate.IsZero() {
		return fmt.Errorf("missing hotel date")
	}
	if r.ResNo == 0 && r.ResID == 0 {
		return fmt.Errorf("missing reservation identifiers")
	}
	return nil
}
