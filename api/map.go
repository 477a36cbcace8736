package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openrelief/relief-api/geo"
	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/store"
)

// mapFeatures returns the pending requests as a GeoJSON feature collection,
// one marker per request colored by urgency. Rebuilding from the same
// listing always yields the same features, so clients can redraw on every
// change event without duplicating markers.
func (s *Server) mapFeatures(c *gin.Context) {
	requests, err := s.store.ListHelpRequests(schema.RequestStatusPending, "", store.OrderByNewest)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, geo.NewFeatureCollection(requests))
}
