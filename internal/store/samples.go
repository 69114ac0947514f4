package store

import (
	"encoding/json"

	"pharmacy-backend/internal/models"
)

// fallbackSample returns the built-in single-record sample used when the
// remote seed document for a collection cannot be loaded.
func fallbackSample(collection string) []byte {
	var records any
	switch collection {
	case CollectionProducts:
		records = []models.Product{{
			ID:          1,
			Name:        "فيتامين د3 1000 وحدة",
			Category:    models.ProductCategoryVitamins,
			Price:       "12.99 ج.م",
			Description: "فيتامين أساسي لصحة العظام ودعم جهاز المناعة",
			Image:       "images/products/vitamin-d3.svg",
			Status:      models.ProductStatusActive,
			DateAdded:   "2024-03-15",
		}}
	case CollectionNews:
		records = []models.Article{{
			ID:            1,
			Title:         "أهمية الالتزام بالدواء",
			Author:        "حازم سعد",
			Category:      models.ArticleCategoryHealthTips,
			Content:       "فهم سبب أهمية تناول الأدوية كما هو موصوف لنجاح العلاج والنتائج الصحية الشاملة.",
			Image:         "images/news-1.png",
			Status:        models.ArticleStatusPublished,
			DatePublished: "2024-03-15",
			Featured:      true,
		}}
	case CollectionOffers:
		records = []models.Offer{{
			ID:          1,
			Title:       "خصم 20% على جميع الفيتامينات",
			Description: "عزز مناعتك مع مجموعة الفيتامينات المميزة لدينا. العرض ساري حتى 31 مارس.",
			Discount:    "20%",
			Category:    "vitamins",
			ValidUntil:  "2024-03-31",
			Status:      models.OfferStatusActive,
			Featured:    true,
		}}
	case CollectionMessages:
		records = []models.Message{{
			ID:           1,
			Name:         "أحمد محمد",
			Email:        "ahmed@example.com",
			Phone:        "+20 123 456 7890",
			Subject:      "استشارة صيدلانية",
			Message:      "أحتاج نصيحة حول تفاعلات الأدوية مع بعض المكملات الغذائية...",
			Status:       models.MessageStatusUnread,
			DateReceived: "2024-03-15T10:30:00",
			Priority:     models.MessagePriorityNormal,
		}}
	default:
		records = []struct{}{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		// the samples above are static and always encode
		return []byte("[]")
	}
	return data
}
