package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/services"
)

// ContactHandler exposes the public contact form endpoint
type ContactHandler struct {
	contact  *services.ContactService
	notifier *Notifier
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contact *services.ContactService, notifier *Notifier) *ContactHandler {
	return &ContactHandler{contact: contact, notifier: notifier}
}

// Submit accepts a form-encoded contact submission. The response body always
// carries {success, message} with the message in Arabic, and the status code
// mirrors the outcome: 200 on success, 400 on validation failure, 500 when
// the message could not be stored anywhere.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("contact: malformed submission: %v", err)
	}

	outcome := h.contact.Submit(req)
	if outcome.Success {
		h.notifier.StatsChanged()
	}

	c.JSON(outcome.Status, gin.H{
		"success": outcome.Success,
		"message": outcome.Message,
	})
}
