package api

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/services"
)

// MessageHandler exposes the contact message inbox endpoints
type MessageHandler struct {
	messages *services.MessageService
	notifier *Notifier
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages *services.MessageService, notifier *Notifier) *MessageHandler {
	return &MessageHandler{messages: messages, notifier: notifier}
}

// List returns the full inbox
func (h *MessageHandler) List(c *gin.Context) {
	messages := h.messages.GetAll()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    messages,
		"count":   len(messages),
	})
}

// Get returns one message by id
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	message, found := h.messages.GetByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Message not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    message,
	})
}

// ToggleRead flips a message between read and unread
func (h *MessageHandler) ToggleRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	message, found, err := h.messages.ToggleRead(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save message: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Message not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    message,
		"message": "Message updated",
	})
}

// Reply marks a message read and returns a mailto link pre-addressed to the
// sender
func (h *MessageHandler) Reply(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	message, found, err := h.messages.MarkRead(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save message: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Message not found",
		})
		return
	}

	mailto := "mailto:" + message.Email + "?subject=" + url.QueryEscape("رد: "+message.Subject)

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": message,
			"mailto":  mailto,
		},
	})
}

// Delete removes a message from the inbox
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.messages.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete message: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Message not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message deleted",
	})
}
