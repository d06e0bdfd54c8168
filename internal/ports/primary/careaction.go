package primary

import "context"

// CareActionService defines the primary port for recording and listing
// care events.
type CareActionService interface {
	// RecordCareAction validates and records one watering or
	// fertilizing event, returning the created log entry together with
	// the plant's updated derived fields so callers can refresh a view
	// without a second read.
	RecordCareAction(ctx context.Context, userID string, req RecordCareActionRequest) (*RecordCareActionResult, error)

	// ListCareActions returns the plant's care history, newest first.
	ListCareActions(ctx context.Context, userID string, q CareActionsQuery) ([]CareLogEntry, error)
}

// RecordCareActionRequest contains parameters for recording a care
// event. An empty PerformedAt means today (UTC).
type RecordCareActionRequest struct {
	PlantID     string
	ActionType  string // "watering" or "fertilizing"
	PerformedAt string // optional, strict YYYY-MM-DD
}

// RecordCareActionResult is the outcome of a recorded care event.
type RecordCareActionResult struct {
	Entry CareLogEntry
	Plant Plant
}

// CareLogEntry is a care event at the port boundary.
type CareLogEntry struct {
	ID          string
	ActionType  string
	PerformedAt string
	CreatedAt   string
}

// CareActionsQuery contains filter options for listing care events.
type CareActionsQuery struct {
	PlantID    string
	ActionType string // optional filter
	Limit      int    // default 50, max 200
}
