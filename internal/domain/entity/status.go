package entity

// Reservation status codes in the target schema.
const (
	StatusCancelled  = 0
	StatusCheckedIn  = 1
	StatusCheckedOut = 2
	StatusConfirmed  = 3
	StatusNoShow     = 4
	StatusTentative  = 5
)

// Host PMS ResStatus codes.
const (
	ResStatusStandard = 0
	ResStatusOption   = 2
	ResStatusWaitlist = 3
	ResStatusOOO      = 5
	ResStatusCXL      = 6
	ResStatusNoShow   = 7
	ResStatusOOI      = 8
	ResStatusCI       = 10
	ResStatusCO       = 20
)

var resStatusMap = map[int]int{
	ResStatusStandard: StatusConfirmed,
	ResStatusOption:   StatusTentative,
	ResStatusWaitlist: StatusTentative,
	ResStatusOOO:      StatusCancelled,
	ResStatusCXL:      StatusCancelled,
	ResStatusNoShow:   StatusNoShow,
	ResStatusOOI:      StatusCancelled,
	ResStatusCI:       StatusCheckedIn,
	ResStatusCO:       StatusCheckedOut,
}

// MapResStatus translates a Host PMS ResStatus code into the target status
// code. Unmapped codes default to CONFIRMED.
func MapResStatus(resStatus int) int {
	if status, ok := resStatusMap[resStatus]; ok {
		return status
	}
	return StatusConfirmed
}
