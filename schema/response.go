package schema

import (
	"time"

	"github.com/google/uuid"
)

// Response records a volunteer's offer to fulfill a specific help request.
// A request may collect many responses; only the first recorded response's
// author is written back onto the request as its responder.
type Response struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID uuid.UUID `json:"request_id" gorm:"type:uuid"`
	Responder string    `json:"responder"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
