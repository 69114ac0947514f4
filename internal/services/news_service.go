package services

import (
	"time"

	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/store"
)

// NewsService handles news article business logic
type NewsService struct {
	articles *store.Collection[models.Article]
	now      func() time.Time
}

// NewNewsService creates a new news service over the store
func NewNewsService(s *store.Store) *NewsService {
	return &NewsService{
		articles: store.NewCollection[models.Article](s, store.CollectionNews),
		now:      time.Now,
	}
}

// GetAll returns every article in insertion order
func (s *NewsService) GetAll() []models.Article {
	return s.articles.GetAll()
}

// GetPublished returns articles visible on the public page
func (s *NewsService) GetPublished() []models.Article {
	var published []models.Article
	for _, a := range s.articles.GetAll() {
		if a.IsPublished() {
			published = append(published, a)
		}
	}
	return published
}

// GetByID returns the article with the given id
func (s *NewsService) GetByID(id int) (models.Article, bool) {
	return s.articles.GetByID(id)
}

// Create adds a new article, defaulting the publish date to today and
// featured to false
func (s *NewsService) Create(req *models.ArticleCreation) (models.Article, error) {
	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	image := req.Image
	if image == "" {
		image = "images/news/default.jpg"
	}
	return s.articles.Add(models.Article{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		Content:       req.Content,
		Image:         image,
		Status:        req.Status,
		DatePublished: s.now().Format("2006-01-02"),
		Featured:      featured,
	})
}

// Update shallow-merges the fields present in the payload over the stored
// article
func (s *NewsService) Update(id int, req *models.ArticleUpdate) (models.Article, bool, error) {
	return s.articles.Update(id, func(a models.Article) models.Article {
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Author != nil {
			a.Author = *req.Author
		}
		if req.Category != nil {
			a.Category = *req.Category
		}
		if req.Content != nil {
			a.Content = *req.Content
		}
		if req.Image != nil {
			a.Image = *req.Image
		}
		if req.Status != nil {
			a.Status = *req.Status
		}
		if req.Featured != nil {
			a.Featured = *req.Featured
		}
		return a
	})
}

// Delete removes the article with the given id
func (s *NewsService) Delete(id int) (bool, error) {
	return s.articles.Delete(id)
}
