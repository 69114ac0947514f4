package services

import (
	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/store"
)

// OfferService handles promotional offer business logic
type OfferService struct {
	offers *store.Collection[models.Offer]
}

// NewOfferService creates a new offer service over the store
func NewOfferService(s *store.Store) *OfferService {
	return &OfferService{
		offers: store.NewCollection[models.Offer](s, store.CollectionOffers),
	}
}

// GetAll returns every offer in insertion order
func (s *OfferService) GetAll() []models.Offer {
	return s.offers.GetAll()
}

// GetFeatured returns the offer driving the main promotional slide: the
// first featured active offer, if any
func (s *OfferService) GetFeatured() (models.Offer, bool) {
	for _, o := range s.offers.GetAll() {
		if o.Featured && o.IsActive() {
			return o, true
		}
	}
	return models.Offer{}, false
}

// GetCards returns the active non-featured offers shown as cards
func (s *OfferService) GetCards() []models.Offer {
	var cards []models.Offer
	for _, o := range s.offers.GetAll() {
		if o.IsActive() && !o.Featured {
			cards = append(cards, o)
		}
	}
	return cards
}

// GetByID returns the offer with the given id
func (s *OfferService) GetByID(id int) (models.Offer, bool) {
	return s.offers.GetByID(id)
}

// Create adds a new offer, defaulting status to active and featured to false
func (s *OfferService) Create(req *models.OfferCreation) (models.Offer, error) {
	status := models.OfferStatusActive
	if req.Status != nil {
		status = *req.Status
	}
	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	return s.offers.Add(models.Offer{
		Title:       req.Title,
		Description: req.Description,
		Discount:    req.Discount,
		Category:    req.Category,
		ValidUntil:  req.ValidUntil,
		Status:      status,
		Featured:    featured,
		Image:       req.Image,
	})
}

// Update shallow-merges the fields present in the payload over the stored
// offer
func (s *OfferService) Update(id int, req *models.OfferUpdate) (models.Offer, bool, error) {
	return s.offers.Update(id, func(o models.Offer) models.Offer {
		if req.Title != nil {
			o.Title = *req.Title
		}
		if req.Description != nil {
			o.Description = *req.Description
		}
		if req.Discount != nil {
			o.Discount = *req.Discount
		}
		if req.Category != nil {
			o.Category = *req.Category
		}
		if req.ValidUntil != nil {
			o.ValidUntil = *req.ValidUntil
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.Featured != nil {
			o.Featured = *req.Featured
		}
		if req.Image != nil {
			o.Image = *req.Image
		}
		return o
	})
}

// Delete removes the offer with the given id
func (s *OfferService) Delete(id int) (bool, error) {
	return s.offers.Delete(id)
}
