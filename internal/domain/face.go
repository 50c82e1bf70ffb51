package domain

import (
	"time"
)

// Embedding is a fixed-length face encoding vector. Immutable once produced.
type Embedding []float64

// KnownFace represents a registered face the matcher can compare against
type KnownFace struct {
	ID       string    `json:"id"`
	Encoding Embedding `json:"encoding"`
}

// MatchResult is a known face whose distance to a query embedding fell
// under the configured threshold
type MatchResult struct {
	ID       string  `json:"id"`
	Distance float64 `json:"dist"`
}

// DetectionOutcome is the result of comparing one image against a known set.
// DetectedCount is the number of faces found in the image regardless of
// whether any of them matched.
type DetectionOutcome struct {
	DetectedCount int           `json:"detected_count"`
	Matches       []MatchResult `json:"matches"`
}

// AttendanceReport is the payload delivered to the attendance collaborator.
// It is ephemeral and never persisted locally.
type AttendanceReport struct {
	ContextID  string        `json:"contextId"`
	Matches    []MatchResult `json:"matches"`
	CapturedAt time.Time     `json:"capturedAt"`
}

// Recognition is the full outcome of one recognition request
type Recognition struct {
	DetectedCount      int           `json:"detected_count"`
	Matches            []MatchResult `json:"matches"`
	AttendanceReported bool          `json:"attendance_reported"`
	CapturedAt         time.Time     `json:"captured_at"`
}
