package store

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/openrelief/relief-api/realtime"
	"github.com/openrelief/relief-api/schema"
)

// CreateResponse records a volunteer's offer on a help request. It is an
// independent write: marking the request in progress is a separate call and
// a failure there leaves the response in place.
func (s *ReliefStore) CreateResponse(requestID, responder, message string) (*schema.Response, error) {
	reqID, err := uuid.Parse(requestID)
	if err != nil {
		return nil, ErrRequestNotExist
	}

	resp := schema.Response{
		RequestID: reqID,
		Responder: responder,
		Message:   message,
	}

	if err := s.ormDB.Create(&resp).Error; err != nil {
		// request_id carries a foreign key to help_requests
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	s.publish(schema.ResponseTable, realtime.ActionInsert, resp.ID.String())
	return &resp, nil
}
