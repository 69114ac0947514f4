package models

// MessageStatus represents read state of a contact message
type MessageStatus string

const (
	MessageStatusUnread MessageStatus = "unread"
	MessageStatusRead   MessageStatus = "read"
)

// MessagePriority represents message priority
type MessagePriority string

const (
	MessagePriorityNormal MessagePriority = "normal"
	MessagePriorityHigh   MessagePriority = "high"
)

// DefaultMessageSubject is used when a submission carries no subject
const DefaultMessageSubject = "رسالة جديدة"

// Message represents a contact form submission
type Message struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Subject      string          `json:"subject"`
	Message      string          `json:"message"`
	Status       MessageStatus   `json:"status"`
	DateReceived string          `json:"dateReceived"`
	Priority     MessagePriority `json:"priority"`
}

// GetID returns the record id
func (m Message) GetID() int { return m.ID }

// WithID returns a copy of the message with the given id assigned
func (m Message) WithID(id int) Message {
	m.ID = id
	return m
}

// IsUnread checks whether the message still awaits a first read
func (m Message) IsUnread() bool {
	return m.Status == MessageStatusUnread || m.Status == ""
}
