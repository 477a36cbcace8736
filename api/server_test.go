package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openrelief/relief-api/api/mocks"
	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/store"
)

func TestReadRoutesAreBrowsableWithoutSession(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockReliefCore(ctl)
	s := Server{store: a}

	a.EXPECT().
		ListHelpRequests(schema.RequestStatusPending, "", store.OrderByNewest).
		Return([]schema.HelpRequest{}, nil).
		Times(1)
	a.EXPECT().
		ListHelpRequests(schema.RequestStatusPending, "", store.OrderByUrgency).
		Return([]schema.HelpRequest{}, nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := s.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/map/features", nil))
	assert.Equal(t, http.StatusOK, w.Code, "map features must be readable without a session")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/requests", nil))
	assert.Equal(t, http.StatusOK, w.Code, "listing must be readable without a session")
}

func TestWriteRoutesRequireSession(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: the middleware rejects before any store call
	a := mocks.NewMockReliefCore(ctl)
	s := Server{store: a}

	gin.SetMode(gin.TestMode)
	router := s.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/requests", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
