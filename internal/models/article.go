package models

// ArticleCategory represents news article categories
type ArticleCategory string

const (
	ArticleCategoryHealthTips  ArticleCategory = "health-tips"
	ArticleCategoryMedications ArticleCategory = "medications"
	ArticleCategoryWellness    ArticleCategory = "wellness"
	ArticleCategoryNutrition   ArticleCategory = "nutrition"
	ArticleCategoryPharmacy    ArticleCategory = "pharmacy"
)

// ArticleStatus represents article publication status
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article represents a news article. Content carries lightweight markup:
// lines starting with "##" are headings, lines starting with "-" are list
// items, everything else is a paragraph.
type Article struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Category      ArticleCategory `json:"category"`
	Content       string          `json:"content"`
	Image         string          `json:"image"`
	Status        ArticleStatus   `json:"status"`
	DatePublished string          `json:"datePublished"`
	Featured      bool            `json:"featured"`
}

// GetID returns the record id
func (a Article) GetID() int { return a.ID }

// WithID returns a copy of the article with the given id assigned
func (a Article) WithID(id int) Article {
	a.ID = id
	return a
}

// IsPublished checks if the article is visible on the public page
func (a Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished || a.Status == ""
}

// ArticleCreation represents data for creating a new article
type ArticleCreation struct {
	Title    string          `json:"title" binding:"required,min=1,max=300"`
	Author   string          `json:"author" binding:"required,min=1,max=100"`
	Category ArticleCategory `json:"category" binding:"required,oneof=health-tips medications wellness nutrition pharmacy"`
	Content  string          `json:"content" binding:"required"`
	Image    string          `json:"image" binding:"max=500"`
	Status   ArticleStatus   `json:"status" binding:"required,oneof=draft published"`
	Featured *bool           `json:"featured,omitempty"`
}

// ArticleUpdate represents data for updating an article
type ArticleUpdate struct {
	Title    *string          `json:"title,omitempty" binding:"omitempty,min=1,max=300"`
	Author   *string          `json:"author,omitempty" binding:"omitempty,min=1,max=100"`
	Category *ArticleCategory `json:"category,omitempty" binding:"omitempty,oneof=health-tips medications wellness nutrition pharmacy"`
	Content  *string          `json:"content,omitempty"`
	Image    *string          `json:"image,omitempty" binding:"omitempty,max=500"`
	Status   *ArticleStatus   `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
	Featured *bool            `json:"featured,omitempty"`
}
