package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openrelief/relief-api/schema"
)

// resolveAddress suggests a display address for a device coordinate, for
// prefilling the submission form. Resolution is best effort: without a
// geocoding client the feature degrades instead of failing the form.
func (s *Server) resolveAddress(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if s.geoClient == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorCannotResolveAddress)
		return
	}

	address, err := s.geoClient.Address(schema.Location{
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorCannotResolveAddress, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}
