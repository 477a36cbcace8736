package store

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"

	"github.com/openrelief/relief-api/realtime"
	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/utils"
)

var (
	ErrRequestNotExist  = fmt.Errorf("the request does not exist")
	ErrRequestNotOpen   = fmt.Errorf("the request is either taken or not open for you")
	ErrDuplicateRequest = fmt.Errorf("an identical request already exists")
)

// ListOrder selects the sort key of a help request listing.
type ListOrder int

const (
	// OrderByNewest sorts by creation time descending.
	OrderByNewest ListOrder = iota
	// OrderByUrgency sorts by urgency descending first, creation time
	// descending second.
	OrderByUrgency
)

// urgencyRankSQL orders the urgency enumeration critical > high > medium > low.
const urgencyRankSQL = `CASE urgency WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC`

// HelpRequestParams carries the caller-supplied fields of a new help
// request. The requester identity and the pending status are stamped by the
// store, never by the caller.
type HelpRequestParams struct {
	Title            string
	Description      string
	Category         string
	Urgency          string
	Address          string
	Latitude         float64
	Longitude        float64
	AIClassification json.RawMessage
}

// CreateHelpRequest creates a help request in the pending state.
func (s *ReliefStore) CreateHelpRequest(requester string, params HelpRequestParams) (*schema.HelpRequest, error) {
	req := schema.HelpRequest{
		Requester:        requester,
		Title:            params.Title,
		Description:      params.Description,
		Category:         params.Category,
		Urgency:          params.Urgency,
		Latitude:         params.Latitude,
		Longitude:        params.Longitude,
		Address:          params.Address,
		Status:           schema.RequestStatusPending,
		AIClassification: postgres.Jsonb{RawMessage: params.AIClassification},
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	s.publish(schema.HelpRequestTable, realtime.ActionInsert, req.ID.String())
	return &req, nil
}

func (s *ReliefStore) GetHelpRequest(requestID string) (*schema.HelpRequest, error) {
	var req schema.HelpRequest

	if err := s.ormDB.Where("id = ?", requestID).First(&req).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

// ListHelpRequests returns requests matching a status, optionally narrowed
// to one category. An empty category matches all categories.
func (s *ReliefStore) ListHelpRequests(status, category string, order ListOrder) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	query := s.ormDB.Where("status = ?", status)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	switch order {
	case OrderByUrgency:
		query = query.Order(urgencyRankSQL).Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// ListNearbyHelpRequests returns pending requests within radiusKM of a
// location, closest first.
func (s *ReliefStore) ListNearbyHelpRequests(loc schema.Location, radiusKM float64) ([]schema.HelpRequest, error) {
	pending, err := s.ListHelpRequests(schema.RequestStatusPending, "", OrderByNewest)
	if err != nil {
		return nil, err
	}

	nearby := []schema.HelpRequest{}
	for _, req := range pending {
		d := utils.Distance(loc, schema.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})
		if d <= radiusKM {
			nearby = append(nearby, req)
		}
	}

	return nearby, nil
}

// UpdateHelpRequest applies a partial field patch to a help request. The
// caller is responsible for whitelisting patch keys.
func (s *ReliefStore) UpdateHelpRequest(requestID string, patch map[string]interface{}) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ?", requestID).
		Updates(patch)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	s.publish(schema.HelpRequestTable, realtime.ActionUpdate, requestID)
	return nil
}

// MarkInProgress moves a request to `in_progress` and stamps its responder.
// The transition is guarded: it applies only while the request is pending
// and the responder is not its own requester.
func (s *ReliefStore) MarkInProgress(requestID, responder string) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND requester != ? AND status = ?", requestID, responder, schema.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":    schema.RequestStatusInProgress,
			"responder": responder,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotOpen
	}

	s.publish(schema.HelpRequestTable, realtime.ActionUpdate, requestID)
	return nil
}
