package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/openrelief/relief-api/api/mocks"
	"github.com/openrelief/relief-api/geo"
	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/store"
)

func TestMapFeatures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockReliefCore(ctl)
	s := Server{store: a}

	requests := []schema.HelpRequest{
		{
			ID:        uuid.New(),
			Title:     "Water needed",
			Category:  schema.CategoryWater,
			Urgency:   schema.UrgencyCritical,
			Latitude:  25.04,
			Longitude: 121.56,
			Status:    schema.RequestStatusPending,
		},
		{
			ID:        uuid.New(),
			Title:     "Blankets",
			Category:  schema.CategorySupplies,
			Urgency:   schema.UrgencyLow,
			Latitude:  24.15,
			Longitude: 120.67,
			Status:    schema.RequestStatusPending,
		},
	}

	a.EXPECT().
		ListHelpRequests(schema.RequestStatusPending, "", store.OrderByNewest).
		Return(requests, nil).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.mapFeatures)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var fc geo.FeatureCollection
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 2)
	assert.Equal(t, geo.ColorCritical, fc.Features[0].Properties["marker-color"])
	assert.Equal(t, geo.ColorLow, fc.Features[1].Properties["marker-color"])
	assert.Equal(t, []float64{121.56, 25.04}, fc.Features[0].Geometry.Coordinates)
}

func TestGetMapToken(t *testing.T) {
	viper.Set("mapbox.token", "pk.test-token")
	defer viper.Set("mapbox.token", "")

	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.getMapToken)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pk.test-token", resp["token"])
}

func TestGetMapTokenNotConfigured(t *testing.T) {
	viper.Set("mapbox.token", "")

	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.getMapToken)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1300), resp.Code)
}

func TestClassifyRequestWithoutClassifier(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.classifyRequest)

	req := httptest.NewRequest("POST", "/", jsonBody(t, map[string]string{
		"title":       "Flooded street",
		"description": "Two feet of water",
		"category":    schema.CategoryShelter,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestClassifyRequestForwardsPayload(t *testing.T) {
	cls := &stubClassifier{payload: json.RawMessage(`{"severity":"moderate","summary":"flooding"}`)}
	s := Server{classifier: cls}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.classifyRequest)

	req := httptest.NewRequest("POST", "/", jsonBody(t, map[string]string{
		"title":       "Flooded street",
		"description": "Two feet of water",
		"category":    schema.CategoryShelter,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"severity":"moderate","summary":"flooding"}`, w.Body.String())
	assert.Equal(t, 1, cls.calls)
}
