package services

import (
	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/renderer"
	"pharmacy-backend/internal/store"
)

// StatsService recomputes the dashboard counters from current collection
// contents each time the dashboard asks
type StatsService struct {
	products *store.Collection[models.Product]
	articles *store.Collection[models.Article]
	offers   *store.Collection[models.Offer]
	messages *store.Collection[models.Message]
}

// NewStatsService creates a stats service over the store
func NewStatsService(s *store.Store) *StatsService {
	return &StatsService{
		products: store.NewCollection[models.Product](s, store.CollectionProducts),
		articles: store.NewCollection[models.Article](s, store.CollectionNews),
		offers:   store.NewCollection[models.Offer](s, store.CollectionOffers),
		messages: store.NewCollection[models.Message](s, store.CollectionMessages),
	}
}

// Current computes the four dashboard counters
func (s *StatsService) Current() renderer.Stats {
	return renderer.ComputeStats(s.products.GetAll(), s.articles.GetAll(), s.offers.GetAll(), s.messages.GetAll())
}
