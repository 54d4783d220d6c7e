package transform

import (
	"testing"
	"time"

	"hostpms-connector/internal/domain/entity"
)

func apiDate(value string) entity.APITime {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return entity.APITime{Time: parsed}
}

func occupancyRecord(resNo, guestID, resID int64, hotelDate string, rooms, pax int) entity.StatDailyRecord {
	return entity.StatDailyRecord{
		RecordType:       entity.RecordTypeHistoryOccupancy,
		HotelDate:        apiDate(hotelDate),
		ResNo:            resNo,
		ResID:            resID,
		GlobalResGuestID: guestID,
		CheckIn:          apiDate("2024-03-10"),
		CheckOut:         apiDate("2024-03-12"),
		CreatedOn:        apiDate("2024-02-01"),
		Category:         "DBL",
		RoomNights:       rooms,
		Pax:              pax,
	}
}

func revenueRecord(resNo, guestID, resID int64, hotelDate, chargeCode string, net float64) entity.StatDailyRecord {
	return entity.StatDailyRecord{
		RecordType:       entity.RecordTypeHistoryRevenue,
		HotelDate:        apiDate(hotelDate),
		ResNo:            resNo,
		ResID:            resID,
		GlobalResGuestID: guestID,
		CheckIn:          apiDate("2024-03-10"),
		CheckOut:         apiDate("2024-03-12"),
		CreatedOn:        apiDate("2024-02-01"),
		ChargeCode:       chargeCode,
		RevenueNet:       net,
	}
}

func TestGroupByReservationDay(t *testing.T) {
	t.Parallel()

	records := []entity.StatDailyRecord{
		occupancyRecord(1001, 55, 9001, "2024-03-10", 1, 2),
		revenueRecord(1001, 55, 9001, "2024-03-10", "ALOJ", 120),
		occupancyRecord(1001, 55, 9001, "2024-03-11", 1, 2),
		{RecordType: "UNKNOWN", ResNo: 5},
	}

	grouped := GroupByReservationDay(records, testLogger())

	if len(grouped.Keys) != 2 {
		t.Fatalf("got %d groups, want 2", len(grouped.Keys))
	}
	if grouped.Dropped != 1 {
		t.Fatalf("got %d dropped records, want 1", grouped.Dropped)
	}

	first := grouped.Keys[0]
	if first.HotelDate != "2024-03-10" {
		t.Fatalf("first-seen order not preserved, got %q", first.HotelDate)
	}
	if len(grouped.Groups[first]) != 2 {
		t.Fatalf("got %d records in first group, want 2", len(grouped.Groups[first]))
	}
}

func TestConsolidateSumsAndClassifies(t *testing.T) {
	t.Parallel()

	classes := defaultChargeClasses()
	classes.Other = map[string]bool{"MINIBAR": true}

	cases := []struct {
		name        string
		records     []entity.StatDailyRecord
		wantRooms   int
		wantPax     int
		wantRoomRev float64
		wantOther   float64
		wantStatus  int
	}{
		{
			name: "occupancy plus room revenue",
			records: []entity.StatDailyRecord{
				occupancyRecord(1001, 55, 9001, "2024-03-10", 1, 2),
				revenueRecord(1001, 55, 9001, "2024-03-10", "ALOJ", 120),
			},
			wantRooms:   1,
			wantPax:     2,
			wantRoomRev: 120,
			wantStatus:  entity.StatusConfirmed,
		},
		{
			name: "multiple occupancy lines all counted",
			records: []entity.StatDailyRecord{
				occupancyRecord(1001, 55, 9001, "2024-03-10", 1, 2),
				occupancyRecord(1001, 55, 9001, "2024-03-10", 2, 3),
			},
			wantRooms:  3,
			wantPax:    5,
			wantStatus: entity.StatusConfirmed,
		},
		{
			name: "revenue split across buckets",
			records: []entity.StatDailyRecord{
				occupancyRecord(1001, 55, 9001, "2024-03-10", 1, 2),
				revenueRecord(1001, 55, 9001, "2024-03-10", "ALOJ", 100),
				revenueRecord(1001, 55, 9001, "2024-03-10", "OB", 20),
				revenueRecord(1001, 55, 9001, "2024-03-10", "MINIBAR", 15),
			},
			wantRooms:   1,
			wantPax:     2,
			wantRoomRev: 120,
			wantOther:   15,
			wantStatus:  entity.StatusConfirmed,
		},
		{
			name: "no-show revenue forces no-show status",
			records: []entity.StatDailyRecord{
				occupancyRecord(1001, 55, 9001, "2024-03-10", 1, 2),
				revenueRecord(1001, 55, 9001, "2024-03-10", "NOSHOW", 80),
			},
			wantRooms:   1,
			wantPax:     2,
			wantRoomRev: 80,
			wantStatus:  entity.StatusNoShow,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			night := Consolidate(tc.records, classes, testLogger())
			if night.Rooms != tc.wantRooms || night.Pax != tc.wantPax {
				t.Fatalf("rooms/pax = %d/%d, want %d/%d", night.Rooms, night.Pax, tc.wantRooms, tc.wantPax)
			}
			if night.RevenueRoom != tc.wantRoomRev {
				t.Fatalf("room revenue = %.2f, want %.2f", night.RevenueRoom, tc.wantRoomRev)
			}
			if night.RevenueOthers != tc.wantOther {
				t.Fatalf("other revenue = %.2f, want %.2f", night.RevenueOthers, tc.wantOther)
			}
			if night.Status != tc.wantStatus {
				t.Fatalf("status = %d, want %d", night.Status, tc.wantStatus)
			}
		})
	}
}

func TestConsolidateCancellationZeroesRoomsNotRevenue(t *testing.T) {
	t.Parallel()

	occ := occupancyRecord(1001, 55, 9001, "2024-03-10", 1, 2)
	occ.ResStatus = entity.ResStatusCXL
	rev := revenueRecord(1001, 55, 9001, "2024-03-10", "TXCANCEL", 45)
	rev.ResStatus = entity.ResStatusCXL

	night := Consolidate([]entity.StatDailyRecord{occ, rev}, defaultChargeClasses(), testLogger())

	if night.Rooms != 0 {
		t.Fatalf("cancelled night kept %d rooms", night.Rooms)
	}
	if !night.IsCancelled {
		t.Fatalf("cancellation flag not set")
	}
	if night.RevenueRoom != 45 {
		t.Fatalf("cancellation fee lost, revenue = %.2f", night.RevenueRoom)
	}
	if night.Status != entity.StatusCancelled {
		t.Fatalf("status = %d, want cancelled", night.Status)
	}
}

func TestConsolidateExcludedRevenueOnlyGroupIsFlagged(t *testing.T) {
	t.Parallel()

	night := Consolidate([]entity.StatDailyRecord{
		revenueRecord(1001, 55, 9001, "2024-03-10", "PA", 10),
	}, defaultChargeClasses(), testLogger())

	if !night.MissingData {
		t.Fatalf("group without occupancy or eligible revenue not flagged")
	}
	if night.RevenueRoom != 0 || night.RevenueOthers != 0 {
		t.Fatalf("excluded revenue leaked: room=%.2f others=%.2f", night.RevenueRoom, night.RevenueOthers)
	}
}
