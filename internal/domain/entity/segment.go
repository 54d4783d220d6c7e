package entity

// SegmentItem is one segment definition with occupancy and revenue flags.
type SegmentItem struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	EnabledOtb     bool   `json:"enabledOtb"`
	EnabledRevenue bool   `json:"enabledRevenue"`
	Position       int    `json:"position"`
	Type           string `json:"type,omitempty"`
}

// SegmentCollection groups segment definitions by type, matching the
// downstream platform's expected shape.
type SegmentCollection struct {
	Agencies    []SegmentItem `json:"agencies"`
	Channels    []SegmentItem `json:"channels"`
	Companies   []SegmentItem `json:"companies"`
	Cros        []SegmentItem `json:"cros"`
	Groups      []SegmentItem `json:"groups"`
	Packages    []SegmentItem `json:"packages"`
	Rates       []SegmentItem `json:"rates"`
	Rooms       []SegmentItem `json:"rooms"`
	Segments    []SegmentItem `json:"segments"`
	SubSegments []SegmentItem `json:"subSegments"`
}

// TotalCount returns the number of segment items across every type.
func (c *SegmentCollection) TotalCount() int {
	return len(c.Agencies) + len(c.Channels) + len(c.Companies) +
		len(c.Cros) + len(c.Groups) + len(c.Packages) + len(c.Rates) +
		len(c.Rooms) + len(c.Segments) + len(c.SubSegments)
}
