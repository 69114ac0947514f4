package services

import (
	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/store"
)

// MessageService handles contact message business logic
type MessageService struct {
	messages *store.Collection[models.Message]
}

// NewMessageService creates a new message service over the store
func NewMessageService(s *store.Store) *MessageService {
	return &MessageService{
		messages: store.NewCollection[models.Message](s, store.CollectionMessages),
	}
}

// GetAll returns every message in insertion order
func (s *MessageService) GetAll() []models.Message {
	return s.messages.GetAll()
}

// GetByID returns the message with the given id
func (s *MessageService) GetByID(id int) (models.Message, bool) {
	return s.messages.GetByID(id)
}

// ToggleRead flips a message between unread and read
func (s *MessageService) ToggleRead(id int) (models.Message, bool, error) {
	return s.messages.Update(id, func(m models.Message) models.Message {
		if m.IsUnread() {
			m.Status = models.MessageStatusRead
		} else {
			m.Status = models.MessageStatusUnread
		}
		return m
	})
}

// MarkRead marks a message read; replying implies the message was read
func (s *MessageService) MarkRead(id int) (models.Message, bool, error) {
	return s.messages.Update(id, func(m models.Message) models.Message {
		m.Status = models.MessageStatusRead
		return m
	})
}

// Delete removes the message with the given id
func (s *MessageService) Delete(id int) (bool, error) {
	return s.messages.Delete(id)
}
