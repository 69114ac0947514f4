package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/renderer"
	"pharmacy-backend/internal/services"
)

// OfferHandler exposes the promotional offer endpoints
type OfferHandler struct {
	offers    *services.OfferService
	countdown *services.CountdownService
	notifier  *Notifier
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offers *services.OfferService, countdown *services.CountdownService, notifier *Notifier) *OfferHandler {
	return &OfferHandler{offers: offers, countdown: countdown, notifier: notifier}
}

type offerCardView struct {
	models.Offer
	Icon     string `json:"icon"`
	Validity string `json:"validity"`
}

// ListActive returns the public offers view: the featured slide plus the
// card list with icons and validity labels
func (h *OfferHandler) ListActive(c *gin.Context) {
	now := time.Now()

	cards := make([]offerCardView, 0)
	for _, offer := range h.offers.GetCards() {
		cards = append(cards, offerCardView{
			Offer:    offer,
			Icon:     renderer.OfferIcon(offer.Category),
			Validity: renderer.ValidityLabel(offer.ValidUntil, now),
		})
	}

	data := gin.H{"cards": cards}
	if featured, ok := h.offers.GetFeatured(); ok {
		data["featured"] = offerCardView{
			Offer:    featured,
			Icon:     renderer.OfferIcon(featured.Category),
			Validity: renderer.ValidityLabel(featured.ValidUntil, now),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"count":   len(cards),
	})
}

// Countdown returns the current state of the featured offer countdown
func (h *OfferHandler) Countdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.countdown.Snapshot(),
	})
}

// List returns every offer regardless of status
func (h *OfferHandler) List(c *gin.Context) {
	offers := h.offers.GetAll()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offers,
		"count":   len(offers),
	})
}

// Get returns one offer by id
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	offer, found := h.offers.GetByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Offer not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offer,
	})
}

// Create adds an offer
func (h *OfferHandler) Create(c *gin.Context) {
	var req models.OfferCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid offer data: " + err.Error(),
		})
		return
	}

	offer, err := h.offers.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save offer: " + err.Error(),
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    offer,
		"message": "Offer created",
	})
}

// Update applies a partial update to an offer
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.OfferUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid offer data: " + err.Error(),
		})
		return
	}

	offer, found, err := h.offers.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save offer: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Offer not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offer,
		"message": "Offer updated",
	})
}

// Delete removes an offer
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.offers.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete offer: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Offer not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Offer deleted",
	})
}
