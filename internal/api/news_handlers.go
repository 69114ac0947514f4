package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/renderer"
	"pharmacy-backend/internal/services"
)

// NewsHandler exposes the news article endpoints
type NewsHandler struct {
	news     *services.NewsService
	notifier *Notifier
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(news *services.NewsService, notifier *Notifier) *NewsHandler {
	return &NewsHandler{news: news, notifier: notifier}
}

// ListPublished returns published articles for the public site
func (h *NewsHandler) ListPublished(c *gin.Context) {
	articles := h.news.GetPublished()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    articles,
		"count":   len(articles),
	})
}

// List returns every article regardless of status
func (h *NewsHandler) List(c *gin.Context) {
	articles := h.news.GetAll()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    articles,
		"count":   len(articles),
	})
}

// Get returns one article with its body rendered to HTML and its publish
// date formatted in Arabic
func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, found := h.news.GetByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Article not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"article":       article,
			"contentHtml":   string(renderer.ArticleHTML(article.Content)),
			"categoryLabel": renderer.ArticleCategoryLabel(string(article.Category)),
			"dateLabel":     renderer.FormatDate(article.DatePublished),
		},
	})
}

// Create adds an article
func (h *NewsHandler) Create(c *gin.Context) {
	var req models.ArticleCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid article data: " + err.Error(),
		})
		return
	}

	article, err := h.news.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save article: " + err.Error(),
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    article,
		"message": "Article created",
	})
}

// Update applies a partial update to an article
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ArticleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid article data: " + err.Error(),
		})
		return
	}

	article, found, err := h.news.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save article: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Article not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    article,
		"message": "Article updated",
	})
}

// Delete removes an article
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.news.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete article: " + err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Article not found",
		})
		return
	}

	h.notifier.StatsChanged()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article deleted",
	})
}
