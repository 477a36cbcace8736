package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// getMapToken exposes the map rendering token to authorized clients. The
// token itself is a server-side secret; this endpoint does nothing beyond
// handing it out.
func (s *Server) getMapToken(c *gin.Context) {
	token := viper.GetString("mapbox.token")
	if token == "" {
		abortWithEncoding(c, http.StatusInternalServerError, errorMapTokenNotConfigured)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// classifyRequest forwards request text to the external classification
// service. The payload comes back opaque; a failed or empty classification
// yields null, never an error, because the result is advisory.
func (s *Server) classifyRequest(c *gin.Context) {
	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if s.classifier == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	payload, err := s.classifier.Classify(c.Request.Context(), params.Title, params.Description, params.Category)
	if err != nil {
		log.WithError(err).Warn("classification unavailable")
		c.JSON(http.StatusOK, nil)
		return
	}

	if payload == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
