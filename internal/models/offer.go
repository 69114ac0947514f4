package models

// OfferStatus represents offer status
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusInactive OfferStatus = "inactive"
)

// Offer represents a promotional offer. At most one featured+active offer
// drives the main promotional slide; the rest render as cards.
type Offer struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Discount    string      `json:"discount"`
	Category    string      `json:"category"`
	ValidUntil  string      `json:"validUntil"`
	Status      OfferStatus `json:"status"`
	Featured    bool        `json:"featured"`
	Image       string      `json:"image,omitempty"`
}

// GetID returns the record id
func (o Offer) GetID() int { return o.ID }

// WithID returns a copy of the offer with the given id assigned
func (o Offer) WithID(id int) Offer {
	o.ID = id
	return o
}

// IsActive checks if the offer is visible on the public page
func (o Offer) IsActive() bool {
	return o.Status == OfferStatusActive
}

// OfferCreation represents data for creating a new offer
type OfferCreation struct {
	Title       string       `json:"title" binding:"required,min=1,max=300"`
	Description string       `json:"description" binding:"max=1000"`
	Discount    string       `json:"discount" binding:"max=50"`
	Category    string       `json:"category" binding:"max=50"`
	ValidUntil  string       `json:"validUntil" binding:"max=30"`
	Status      *OfferStatus `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Featured    *bool        `json:"featured,omitempty"`
	Image       string       `json:"image" binding:"max=500"`
}

// OfferUpdate represents data for updating an offer
type OfferUpdate struct {
	Title       *string      `json:"title,omitempty" binding:"omitempty,min=1,max=300"`
	Description *string      `json:"description,omitempty" binding:"omitempty,max=1000"`
	Discount    *string      `json:"discount,omitempty" binding:"omitempty,max=50"`
	Category    *string      `json:"category,omitempty" binding:"omitempty,max=50"`
	ValidUntil  *string      `json:"validUntil,omitempty" binding:"omitempty,max=30"`
	Status      *OfferStatus `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Featured    *bool        `json:"featured,omitempty"`
	Image       *string      `json:"image,omitempty" binding:"omitempty,max=500"`
}
