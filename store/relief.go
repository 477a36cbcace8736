package store

import (
	"github.com/jinzhu/gorm"

	"github.com/openrelief/relief-api/realtime"
	"github.com/openrelief/relief-api/schema"
)

// relief main datastore
type ReliefCore interface {
	Ping() error

	// Help requests
	CreateHelpRequest(requester string, params HelpRequestParams) (*schema.HelpRequest, error)
	GetHelpRequest(requestID string) (*schema.HelpRequest, error)
	ListHelpRequests(status, category string, order ListOrder) ([]schema.HelpRequest, error)
	ListNearbyHelpRequests(loc schema.Location, radiusKM float64) ([]schema.HelpRequest, error)
	UpdateHelpRequest(requestID string, patch map[string]interface{}) error
	MarkInProgress(requestID, responder string) error

	// Responses
	CreateResponse(requestID, responder, message string) (*schema.Response, error)
}

// ReliefStore is an implementation of ReliefCore
type ReliefStore struct {
	ormDB *gorm.DB
	mongo MongoStore
	bus   realtime.Publisher
}

func NewReliefStore(ormDB *gorm.DB, mongo MongoStore, bus realtime.Publisher) *ReliefStore {
	return &ReliefStore{
		ormDB: ormDB,
		mongo: mongo,
		bus:   bus,
	}
}

// Ping is to check the storage health status
func (s *ReliefStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// publish emits a change event for a committed write. Views subscribed to
// the table re-run their query on any event.
func (s *ReliefStore) publish(table, action, id string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(realtime.Event{
		Table:  table,
		Action: action,
		ID:     id,
	})
}
