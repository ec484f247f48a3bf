package response

import (
	"time"

	"turismo_xpto/internal/domain/entities"
)

type FieldChangeResponse struct {
	Field  string  `json:"field"`
	Before *string `json:"before"`
	After  *string `json:"after"`
}

type HistoryEntryResponse struct {
	ID        string                `json:"id"`
	EntityID  string                `json:"entity_id"`
	Action    string                `json:"action"`
	Changes   []FieldChangeResponse `json:"changes"`
	UserID    string                `json:"user_id"`
	UserName  string                `json:"user_name,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

func FromHistoryEntry(e entities.HistoryEntry) HistoryEntryResponse {
	changes := make([]FieldChangeResponse, 0, len(e.Changes))
	for _, c := range e.Changes {
		changes = append(changes, FieldChangeResponse{Field: string(c.Field), Before: c.Before, After: c.After})
	}
	return HistoryEntryResponse{
		ID:        e.ID,
		EntityID:  e.EntityID,
		Action:    string(e.Action),
		Changes:   changes,
		UserID:    e.UserID,
		UserName:  e.UserName,
		Timestamp: e.Timestamp,
	}
}

func FromHistoryEntries(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromHistoryEntry(e))
	}
	return out
}
