package transform

import (
	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

// DayKey is the composite identity of one reservation-line night. All
// records sharing this key describe the same night of the same source line
// from different angles (occupancy vs revenue, history vs forecast).
// MasterDetail keeps master (0) and child detail lines apart: a master and
// a child claiming the same stay-date must stay separate nights so the
// overlap resolver can zero the child instead of the two lines being
// summed into one.
type DayKey struct {
	ResNo        int64
	GuestID      int64
	ResID        int64
	MasterDetail int64
	HotelDate    string
}

// GroupedRecords maps reservation-day keys to the records sharing them.
// Keys preserves first-seen order so output is deterministic.
type GroupedRecords struct {
	Keys    []DayKey
	Groups  map[DayKey][]entity.StatDailyRecord
	Dropped int
}

// GroupByReservationDay groups raw daily-statistics records into
// reservation-day units in a single pass. Records that do not fit the
// expected shape are dropped with a warning, never aborting the run.
func GroupByReservationDay(records []entity.StatDailyRecord, log logger.Logger) *GroupedRecords {
	grouped := &GroupedRecords{
		Groups: make(map[DayKey][]entity.StatDailyRecord),
	}

	for _, record := range records {
		if err := record.Valid(); err != nil {
			log.Warn("Dropping malformed StatDaily record",
				"resNo", record.ResNo,
				"recordType", record.RecordType,
				"error", err)
			grouped.Dropped++
			continue
		}

		key := DayKey{
			ResNo:        record.ResNo,
			GuestID:      record.GlobalResGuestID,
			ResID:        record.ResID,
			MasterDetail: record.MasterDetail,
			HotelDate:    utils.DateString(record.HotelDate.Time),
		}

		if _, seen := grouped.Groups[key]; !seen {
			grouped.Keys = append(grouped.Keys, key)
		}
		grouped.Groups[key] = append(grouped.Groups[key], record)
	}

	log.Info("Grouped StatDaily records by reservation-day",
		"totalRecords", len(records),
		"uniqueGroups", len(grouped.Keys),
		"dropped", grouped.Dropped)

	return grouped
}
