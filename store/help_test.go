package store

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/openrelief/relief-api/realtime"
	"github.com/openrelief/relief-api/schema"
)

// recordingPublisher captures the change events a store write emits.
type recordingPublisher struct {
	events []realtime.Event
}

func (r *recordingPublisher) Publish(e realtime.Event) {
	r.events = append(r.events, e)
}

func newTestStore(t *testing.T) (*ReliefStore, sqlmock.Sqlmock, *recordingPublisher) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	ormDB, err := gorm.Open("postgres", db)
	assert.NoError(t, err)
	ormDB.LogMode(false)

	pub := &recordingPublisher{}
	return NewReliefStore(ormDB, nil, pub), mock, pub
}

func TestCreateHelpRequest(t *testing.T) {
	s, mock, pub := newTestStore(t)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "help_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	req, err := s.CreateHelpRequest("account-1", HelpRequestParams{
		Title:       "Need drinking water",
		Description: "Supply cut off since yesterday",
		Category:    schema.CategoryWater,
		Urgency:     schema.UrgencyHigh,
		Address:     "5 River Rd",
		Latitude:    24.8,
		Longitude:   121.0,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, schema.RequestStatusPending, req.Status)
	assert.Equal(t, "account-1", req.Requester)

	assert.Len(t, pub.events, 1)
	assert.Equal(t, realtime.Event{
		Table:  schema.HelpRequestTable,
		Action: realtime.ActionInsert,
		ID:     id.String(),
	}, pub.events[0])
}

func TestCreateHelpRequestDuplicate(t *testing.T) {
	s, mock, pub := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "help_requests"`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := s.CreateHelpRequest("account-1", HelpRequestParams{
		Title:       "Need drinking water",
		Description: "Supply cut off since yesterday",
		Category:    schema.CategoryWater,
		Urgency:     schema.UrgencyHigh,
		Address:     "5 River Rd",
		Latitude:    24.8,
		Longitude:   121.0,
	})
	assert.Equal(t, ErrDuplicateRequest, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, pub.events)
}

func TestListHelpRequestsByUrgency(t *testing.T) {
	s, mock, _ := newTestStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "urgency", "status"}).
		AddRow(uuid.New().String(), "Trapped on roof", schema.UrgencyCritical, schema.RequestStatusPending).
		AddRow(uuid.New().String(), "Need blankets", schema.UrgencyLow, schema.RequestStatusPending)

	mock.ExpectQuery(`SELECT \* FROM "help_requests" WHERE \(status = \$1\) ORDER BY CASE urgency`).
		WithArgs(schema.RequestStatusPending).
		WillReturnRows(rows)

	requests, err := s.ListHelpRequests(schema.RequestStatusPending, "", OrderByUrgency)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, requests, 2)
	assert.Equal(t, schema.UrgencyCritical, requests[0].Urgency)
}

func TestListHelpRequestsByCategory(t *testing.T) {
	s, mock, _ := newTestStore(t)

	mock.ExpectQuery(`SELECT \* FROM "help_requests" WHERE \(status = \$1\) AND \(category = \$2\)`).
		WithArgs(schema.RequestStatusPending, schema.CategoryMedical).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category"}).
			AddRow(uuid.New().String(), schema.CategoryMedical))

	requests, err := s.ListHelpRequests(schema.RequestStatusPending, schema.CategoryMedical, OrderByNewest)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, requests, 1)
}

func TestMarkInProgress(t *testing.T) {
	s, mock, pub := newTestStore(t)

	id := uuid.New().String()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "help_requests" SET .+ WHERE \(id = \$\d+ AND requester != \$\d+ AND status = \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.MarkInProgress(id, "volunteer-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Len(t, pub.events, 1)
	assert.Equal(t, realtime.ActionUpdate, pub.events[0].Action)
	assert.Equal(t, schema.HelpRequestTable, pub.events[0].Table)
	assert.Equal(t, id, pub.events[0].ID)
}

func TestMarkInProgressNotOpen(t *testing.T) {
	s, mock, pub := newTestStore(t)

	// zero rows affected: taken by someone else, own request, or gone
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "help_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.MarkInProgress(uuid.New().String(), "volunteer-1")
	assert.Equal(t, ErrRequestNotOpen, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, pub.events)
}

func TestUpdateHelpRequestNotExist(t *testing.T) {
	s, mock, pub := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "help_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.UpdateHelpRequest(uuid.New().String(), map[string]interface{}{
		"urgency": schema.UrgencyMedium,
	})
	assert.Equal(t, ErrRequestNotExist, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, pub.events)
}

func TestCreateResponsePublishesInsert(t *testing.T) {
	s, mock, pub := newTestStore(t)

	requestID := uuid.New()
	responseID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "responses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(responseID.String()))
	mock.ExpectCommit()

	resp, err := s.CreateResponse(requestID.String(), "volunteer-1", "on my way")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, requestID, resp.RequestID)
	assert.Equal(t, "volunteer-1", resp.Responder)

	assert.Len(t, pub.events, 1)
	assert.Equal(t, realtime.Event{
		Table:  schema.ResponseTable,
		Action: realtime.ActionInsert,
		ID:     responseID.String(),
	}, pub.events[0])
}

func TestCreateResponseNonexistentRequest(t *testing.T) {
	s, mock, pub := newTestStore(t)

	// a well-formed uuid that matches no help request trips the foreign
	// key; no orphan row and no change event
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "responses"`).
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	_, err := s.CreateResponse(uuid.New().String(), "volunteer-1", "on my way")
	assert.Equal(t, ErrRequestNotExist, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, pub.events)
}

func TestCreateResponseRejectsMalformedID(t *testing.T) {
	s, _, pub := newTestStore(t)

	_, err := s.CreateResponse("not-a-uuid", "volunteer-1", "on my way")
	assert.Equal(t, ErrRequestNotExist, err)
	assert.Empty(t, pub.events)
}
