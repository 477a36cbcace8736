package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/openrelief/relief-api/schema"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func watchableTable(table string) bool {
	switch table {
	case schema.HelpRequestTable, schema.ResponseTable:
		return true
	}
	return false
}

// changeFeed streams change events for one watched table over a websocket.
// Clients re-run their own query on any event; no row data travels on the
// feed. The subscription is released when the connection goes away.
func (s *Server) changeFeed(c *gin.Context) {
	table := c.DefaultQuery("table", schema.HelpRequestTable)
	if !watchableTable(table) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already replied to the client
		log.WithError(err).Error("websocket upgrade")
		return
	}
	defer conn.Close()

	sub := s.bus.Subscribe(table)
	defer sub.Cancel()

	// drain the client side to notice a closed connection
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
