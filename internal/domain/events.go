package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportEventType string

const (
	EventReportCreated         ReportEventType = "report.created"
	EventReportDeleted         ReportEventType = "report.deleted"
	EventReportDeletedByQuorum ReportEventType = "report.deleted_by_quorum"
)

// ReportEvent is pushed to the event queue and delivered to the webhook.
type ReportEvent struct {
	Type       ReportEventType `json:"type"`
	ReportID   uuid.UUID       `json:"report_id"`
	AuthorID   uuid.UUID       `json:"author_id"`
	CategoryID int64           `json:"category_id"`
	Lat        float64         `json:"lat"`
	Lng        float64         `json:"lng"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewReportEvent(t ReportEventType, r *Report) ReportEvent {
	return ReportEvent{
		Type:       t,
		ReportID:   r.ID,
		AuthorID:   r.AuthorID,
		CategoryID: r.CategoryID,
		Lat:        r.Location.Lat(),
		Lng:        r.Location.Lng(),
		OccurredAt: time.Now().UTC(),
	}
}
