package services

import (
	"time"

	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/store"
)

// ProductService handles product catalog business logic
type ProductService struct {
	products *store.Collection[models.Product]
	now      func() time.Time
}

// NewProductService creates a new product service over the store
func NewProductService(s *store.Store) *ProductService {
	return &ProductService{
		products: store.NewCollection[models.Product](s, store.CollectionProducts),
		now:      time.Now,
	}
}

// GetAll returns every product in insertion order
func (s *ProductService) GetAll() []models.Product {
	return s.products.GetAll()
}

// GetActive returns products visible on the public page, optionally
// filtered by category
func (s *ProductService) GetActive(category string) []models.Product {
	var active []models.Product
	for _, p := range s.products.GetAll() {
		if !p.IsActive() {
			continue
		}
		if category != "" && category != "all" && string(p.Category) != category {
			continue
		}
		active = append(active, p)
	}
	return active
}

// GetByID returns the product with the given id
func (s *ProductService) GetByID(id int) (models.Product, bool) {
	return s.products.GetByID(id)
}

// Create adds a new product, defaulting status to active and the added date
// to today
func (s *ProductService) Create(req *models.ProductCreation) (models.Product, error) {
	status := models.ProductStatusActive
	if req.Status != nil {
		status = *req.Status
	}
	image := req.Image
	if image == "" {
		image = "images/products/default.jpg"
	}
	return s.products.Add(models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       image,
		Status:      status,
		DateAdded:   s.now().Format("2006-01-02"),
	})
}

// Update shallow-merges the fields present in the payload over the stored
// product. ok is false when no product has the given id.
func (s *ProductService) Update(id int, req *models.ProductUpdate) (models.Product, bool, error) {
	return s.products.Update(id, func(p models.Product) models.Product {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		return p
	})
}

// Delete removes the product with the given id
func (s *ProductService) Delete(id int) (bool, error) {
	return s.products.Delete(id)
}
