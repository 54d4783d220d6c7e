package pipeline

import (
	"time"

	"hostpms-connector/internal/domain/entity"
)

// Context is the mutable run state shared by every step of one hotel's
// pipeline. The pipeline owns it exclusively; steps read and append.
type Context struct {
	HotelCode string
	StartTime time.Time

	// Input parameters
	LastImportDate string

	// Raw API responses
	ConfigResponse   *entity.HotelConfigResponse
	StatDailyRecords []entity.StatDailyRecord

	// Transformed data
	ConfigData    *entity.HotelConfigData
	Segments      *entity.SegmentCollection
	RoomInventory *entity.RoomInventoryData
	Reservations  *entity.ReservationCollection

	// Storage upload results keyed by data type
	Uploads map[string]entity.UploadResult

	// Queue messages to send
	Notifications []entity.Notification

	// Free-form per-step statistics
	Stats map[string]interface{}

	// Errors encountered during processing
	Errors []entity.StepError

	Success bool
}

// NewContext initializes a run context for one hotel.
func NewContext(hotelCode string) *Context {
	return &Context{
		HotelCode: hotelCode,
		StartTime: time.Now().UTC(),
		Uploads:   make(map[string]entity.UploadResult),
		Stats:     make(map[string]interface{}),
	}
}

// AddError records a failure against a step name.
func (c *Context) AddError(stepName, message string) {
	c.Errors = append(c.Errors, entity.StepError{
		Step:      stepName,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// AddUpload records a storage upload result for a data type.
func (c *Context) AddUpload(dataType string, result entity.UploadResult) {
	c.Uploads[dataType] = result
}

// AddNotification queues an outbound message for the notification step.
func (c *Context) AddNotification(fileType, fileKey string) {
	c.Notifications = append(c.Notifications, entity.Notification{
		HotelCode: c.HotelCode,
		FileType:  fileType,
		FileKey:   fileKey,
	})
}

// HasErrors reports whether any step recorded an error.
func (c *Context) HasErrors() bool {
	return len(c.Errors) > 0
}

// Result snapshots the context into a run result.
func (c *Context) Result() *entity.RunResult {
	endTime := time.Now().UTC()
	return &entity.RunResult{
		HotelCode:     c.HotelCode,
		Success:       c.Success,
		StartTime:     c.StartTime,
		EndTime:       endTime,
		DurationSecs:  endTime.Sub(c.StartTime).Seconds(),
		Errors:        c.Errors,
		Stats:         c.Stats,
		Uploads:       c.Uploads,
		Notifications: c.Notifications,
	}
}
