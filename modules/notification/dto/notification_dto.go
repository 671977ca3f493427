package dto

import "github.com/google/uuid"

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// DeliverPayload is the task payload carried through the queue between the
// enqueueing service and the background worker.
type DeliverPayload struct {
	UserID  uuid.UUID      `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
}
