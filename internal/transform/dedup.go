package transform

type nightKey struct {
	ExternalID   string
	CalendarDate string
}

// DedupLedger guarantees at most one output record per
// (external reservation id, stay date). First occurrence wins; revenue
// from later duplicates is never folded into the kept record.
type DedupLedger struct {
	seen map[nightKey]bool
}

// NewDedupLedger creates an empty ledger.
func NewDedupLedger() *DedupLedger {
	return &DedupLedger{seen: make(map[nightKey]bool)}
}

// Admit records the pair and reports whether it is the first occurrence.
func (l *DedupLedger) Admit(externalID, calendarDate string) bool {
	key := nightKey{ExternalID: externalID, CalendarDate: calendarDate}
	if l.seen[key] {
		return false
	}
	l.seen[key] = true
	return true
}
