package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/store"
)

// defaultRespondMessage is attached to a response when the volunteer does
// not write one.
const defaultRespondMessage = "I can help with this request"

// defaultNearbyRadiusKM bounds the nearby listing when no radius is given.
const defaultNearbyRadiusKM = 50.0

// createHelpRequest is the API for posting a new help request. Validation
// happens before the classifier or the store is touched; the classifier
// call is advisory and its failure never blocks the submission.
func (s *Server) createHelpRequest(c *gin.Context) {
	requester := c.GetString("requester")
	if requester == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
		return
	}

	var params struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Urgency     string   `json:"urgency"`
		Address     string   `json:"address"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Description == "" || params.Address == "" ||
		!schema.IsValidCategory(params.Category) ||
		!schema.IsValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Latitude == nil || params.Longitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired)
		return
	}

	var classification json.RawMessage
	if s.classifier != nil {
		payload, err := s.classifier.Classify(c.Request.Context(), params.Title, params.Description, params.Category)
		if err != nil {
			log.WithError(err).Warn("classification unavailable, submitting without it")
		} else {
			classification = payload
		}
	}

	req, err := s.store.CreateHelpRequest(requester, store.HelpRequestParams{
		Title:            params.Title,
		Description:      params.Description,
		Category:         params.Category,
		Urgency:          params.Urgency,
		Address:          params.Address,
		Latitude:         *params.Latitude,
		Longitude:        *params.Longitude,
		AIClassification: classification,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if s.backgroundEnqueuer != nil {
		if err := s.backgroundEnqueuer.EnqueueBroadcastNewRequest(req.ID.String()); err != nil {
			log.WithError(err).Error("enqueue new request broadcast")
		}
	}

	c.JSON(http.StatusOK, req)
}

// listHelpRequests is the API for the dashboard and map listings. With lat
// and lng query parameters it narrows to requests near that point.
func (s *Server) listHelpRequests(c *gin.Context) {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")
	if latParam != "" && lngParam != "" {
		s.listNearbyHelpRequests(c, latParam, lngParam)
		return
	}

	status := c.DefaultQuery("status", schema.RequestStatusPending)

	category := c.Query("category")
	if category == "all" {
		category = ""
	}
	if category != "" && !schema.IsValidCategory(category) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	order := store.OrderByUrgency
	if c.Query("sort") == "newest" {
		order = store.OrderByNewest
	}

	requests, err := s.store.ListHelpRequests(status, category, order)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) listNearbyHelpRequests(c *gin.Context, latParam, lngParam string) {
	lat, latErr := strconv.ParseFloat(latParam, 64)
	lng, lngErr := strconv.ParseFloat(lngParam, 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	radius := defaultNearbyRadiusKM
	if r := c.Query("radius"); r != "" {
		parsed, err := strconv.ParseFloat(r, 64)
		if err != nil || parsed <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		radius = parsed
	}

	requests, err := s.store.ListNearbyHelpRequests(schema.Location{
		Latitude:  lat,
		Longitude: lng,
	}, radius)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) getHelpRequest(c *gin.Context) {
	id := c.Param("requestID")

	req, err := s.store.GetHelpRequest(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	} else if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// updateHelpRequest applies a partial patch to a request. Identity fields
// are never patchable; they are always stamped from the session.
func (s *Server) updateHelpRequest(c *gin.Context) {
	id := c.Param("requestID")

	var params struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Urgency     *string `json:"urgency"`
		Address     *string `json:"address"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	patch := map[string]interface{}{}
	if params.Title != nil && *params.Title != "" {
		patch["title"] = *params.Title
	}
	if params.Description != nil && *params.Description != "" {
		patch["description"] = *params.Description
	}
	if params.Category != nil {
		if !schema.IsValidCategory(*params.Category) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		patch["category"] = *params.Category
	}
	if params.Urgency != nil {
		if !schema.IsValidUrgency(*params.Urgency) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		patch["urgency"] = *params.Urgency
	}
	if params.Address != nil && *params.Address != "" {
		patch["address"] = *params.Address
	}

	if len(patch) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.UpdateHelpRequest(id, patch); err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// respondToHelpRequest is the API for volunteering on a request. It is two
// independent writes: record the response, then move the request to
// in_progress. When the second write fails the response row is kept and the
// failure is surfaced; no rollback is attempted.
func (s *Server) respondToHelpRequest(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")
	if requester == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
		return
	}

	var params struct {
		Message string `json:"message"`
	}
	_ = c.ShouldBindJSON(&params)
	if params.Message == "" {
		params.Message = defaultRespondMessage
	}

	resp, err := s.store.CreateResponse(id, requester, params.Message)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.store.MarkInProgress(id, requester); err != nil {
		// the response recorded above is intentionally left in place
		if err == store.ErrRequestNotOpen {
			abortWithEncoding(c, http.StatusConflict, errorRequestNotOpen, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorRespondStatusUpdate, err)
		}
		return
	}

	if s.backgroundEnqueuer != nil {
		if err := s.backgroundEnqueuer.EnqueueNotifyRequestAccepted(id); err != nil {
			log.WithError(err).Error("enqueue request accepted notification")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   "OK",
		"response": resp,
	})
}
