package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/services"
)

// ProductHandler exposes the product catalog endpoints
type ProductHandler struct {
	products *services.ProductService
	notifier *Notifier
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *services.ProductService, notifier *Notifier) *ProductHandler {
	return &ProductHandler{products: products, notifier: notifier}
}

// ListActive returns active products for the public site, optionally filtered
// by category
func (h *ProductHandler) ListActive(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	products := h.products.GetActive(category)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

// List returns every product regardless of status
func (h *ProductHandler) List(c *gin.Context) {
	products := h.products.GetAll()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

// Get returns one product by id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, found := h.products.GetByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// Create adds a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.ProductCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid product data: " + err.Error(),
		})
		return
	}

	product, err := h.products.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save product: " + err.Error(),
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
		"message": "Product created",
	})
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid product data: " + err.Error(),
		})
		return
	}

	product, found, err := h.products.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save product: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Product not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
		"message": "Product updated",
	})
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.products.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete product: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Product not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
