package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/services"
)

// parseID reads the :id route parameter as a strict integer. Non-numeric ids
// abort the request with 400.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid ID",
		})
		return 0, false
	}
	return id, true
}

// Notifier pushes fresh dashboard statistics to connected admin clients after
// every content mutation
type Notifier struct {
	stats *services.StatsService
	ws    *services.WebSocketService
}

// NewNotifier creates a notifier over the stats and WebSocket services
func NewNotifier(stats *services.StatsService, ws *services.WebSocketService) *Notifier {
	return &Notifier{stats: stats, ws: ws}
}

// StatsChanged recomputes the dashboard counters and broadcasts them
func (n *Notifier) StatsChanged() {
	if n == nil || n.ws == nil {
		return
	}
	n.ws.Broadcast("stats", n.stats.Current())
}
