package entity

import "time"

// UploadResult identifies one stored artifact.
type UploadResult struct {
	Key string `json:"key" bson:"key"`
	URL string `json:"url" bson:"url"`
}

// Notification is a pending outbound queue message telling the downstream
// processor that a file is ready.
type Notification struct {
	HotelCode string `json:"hotelCode" bson:"hotelCode"`
	FileType  string `json:"fileType" bson:"fileType"`
	FileKey   string `json:"fileKey" bson:"fileKey"`
	MessageID string `json:"messageId,omitempty" bson:"messageId,omitempty"`
}

// StepError records a failure against a named pipeline step.
type StepError struct {
	Step      string    `json:"step" bson:"step"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// RunResult is the structured outcome of one hotel pipeline run. A run
// always yields a result, never a raised fault: a fully successful run and
// a partially failed optional-step run are distinct, inspectable states.
type RunResult struct {
	HotelCode     string                  `json:"hotelCode" bson:"hotelCode"`
	Success       bool                    `json:"success" bson:"success"`
	StartTime     time.Time               `json:"startTime" bson:"startTime"`
	EndTime       time.Time               `json:"endTime" bson:"endTime"`
	DurationSecs  float64                 `json:"durationSeconds" bson:"durationSeconds"`
	Errors        []StepError             `json:"errors" bson:"errors"`
	Stats         map[string]interface{}  `json:"stats" bson:"stats"`
	Uploads       map[string]UploadResult `json:"uploads" bson:"uploads"`
	Notifications []Notification          `json:"notifications" bson:"notifications"`
}
