package models

// ProductCategory represents product categories
type ProductCategory string

const (
	ProductCategoryVitamins    ProductCategory = "vitamins"
	ProductCategorySupplements ProductCategory = "supplements"
	ProductCategoryMedicines   ProductCategory = "medicines"
	ProductCategoryBeauty      ProductCategory = "beauty"
)

// ProductStatus represents product status
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a product shown on the public catalog
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       string          `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Status      ProductStatus   `json:"status"`
	DateAdded   string          `json:"dateAdded"`
}

// GetID returns the record id
func (p Product) GetID() int { return p.ID }

// WithID returns a copy of the product with the given id assigned
func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

// IsActive checks if the product is visible on the public page
func (p Product) IsActive() bool {
	return p.Status == ProductStatusActive || p.Status == ""
}

// ProductCreation represents data for creating a new product
type ProductCreation struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Category    ProductCategory `json:"category" binding:"required,oneof=vitamins supplements medicines beauty"`
	Price       string          `json:"price" binding:"required,max=50"`
	Description string          `json:"description" binding:"max=1000"`
	Image       string          `json:"image" binding:"max=500"`
	Status      *ProductStatus  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// ProductUpdate represents data for updating a product; only the fields
// present in the payload are overwritten
type ProductUpdate struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Category    *ProductCategory `json:"category,omitempty" binding:"omitempty,oneof=vitamins supplements medicines beauty"`
	Price       *string          `json:"price,omitempty" binding:"omitempty,max=50"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=1000"`
	Image       *string          `json:"image,omitempty" binding:"omitempty,max=500"`
	Status      *ProductStatus   `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}
