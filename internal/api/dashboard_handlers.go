package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/renderer"
	"pharmacy-backend/internal/services"
)

// DashboardHandler exposes the admin dashboard counters and the rendered
// HTML fragments the console injects into its tables
type DashboardHandler struct {
	stats    *services.StatsService
	products *services.ProductService
	news     *services.NewsService
	offers   *services.OfferService
	messages *services.MessageService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	stats *services.StatsService,
	products *services.ProductService,
	news *services.NewsService,
	offers *services.OfferService,
	messages *services.MessageService,
) *DashboardHandler {
	return &DashboardHandler{
		stats:    stats,
		products: products,
		news:     news,
		offers:   offers,
		messages: messages,
	}
}

// Stats returns the four dashboard counters
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.stats.Current(),
	})
}

func fragment(c *gin.Context, html string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ProductsFragment returns the products table body as HTML
func (h *DashboardHandler) ProductsFragment(c *gin.Context) {
	fragment(c, renderer.ProductsTable(h.products.GetAll()))
}

// NewsFragment returns the articles table body as HTML
func (h *DashboardHandler) NewsFragment(c *gin.Context) {
	fragment(c, renderer.NewsTable(h.news.GetAll()))
}

// MessagesFragment returns the inbox list as HTML
func (h *DashboardHandler) MessagesFragment(c *gin.Context) {
	fragment(c, renderer.MessagesList(h.messages.GetAll()))
}

// OffersFragment returns the offer cards as HTML
func (h *DashboardHandler) OffersFragment(c *gin.Context) {
	fragment(c, renderer.OfferCards(h.offers.GetAll(), time.Now()))
}
