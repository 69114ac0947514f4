package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pharmacy-backend/internal/models"
)

func TestComputeStatsCountsByStatus(t *testing.T) {
	products := []models.Product{
		{ID: 1, Status: models.ProductStatusActive},
		{ID: 2, Status: models.ProductStatusInactive},
		{ID: 3, Status: models.ProductStatusActive},
	}
	articles := []models.Article{
		{ID: 1, Status: models.ArticleStatusPublished},
		{ID: 2, Status: models.ArticleStatusDraft},
		{ID: 3, Status: models.ArticleStatusPublished},
	}
	offers := []models.Offer{
		{ID: 1, Status: models.OfferStatusActive},
		{ID: 2, Status: models.OfferStatusInactive},
	}
	messages := []models.Message{
		{ID: 1, Status: models.MessageStatusUnread},
		{ID: 2, Status: models.MessageStatusRead},
		{ID: 3, Status: models.MessageStatusUnread},
	}

	stats := ComputeStats(products, articles, offers, messages)
	assert.Equal(t, 3, stats.TotalProducts, "products count all statuses")
	assert.Equal(t, 2, stats.PublishedArticles)
	assert.Equal(t, 1, stats.ActiveOffers)
	assert.Equal(t, 2, stats.UnreadMessages)
}

func TestProductsTablePlaceholderWhenEmpty(t *testing.T) {
	html := ProductsTable(nil)
	assert.Contains(t, html, "لا توجد منتجات حالياً")
	assert.Equal(t, 1, strings.Count(html, "<tr>"))
}

func TestProductsTableRows(t *testing.T) {
	html := ProductsTable([]models.Product{
		{ID: 1, Name: "فيتامين سي", Category: models.ProductCategoryVitamins, Price: "25 ريال", Status: models.ProductStatusActive},
		{ID: 2, Name: "كريم مرطب", Category: "unknown-cat", Price: "35 ريال"},
	})

	assert.Contains(t, html, "فيتامين سي")
	assert.Contains(t, html, "فيتامينات", "category renders translated")
	assert.Contains(t, html, `data-id="1"`)
	// unmapped category passes through, missing status defaults to active
	assert.Contains(t, html, "unknown-cat")
	assert.Equal(t, 2, strings.Count(html, `class="status-badge active"`))
}

func TestNewsTableFormatsDates(t *testing.T) {
	html := NewsTable([]models.Article{
		{ID: 1, Title: "مقال", Author: "حازم سعد", DatePublished: "2025-03-01", Status: models.ArticleStatusPublished},
		{ID: 2, Title: "آخر", Author: "حازم سعد", DatePublished: "not-a-date", Status: models.ArticleStatusDraft},
	})

	assert.Contains(t, html, "Mar 1, 2025")
	assert.Contains(t, html, "Invalid Date")
	assert.Contains(t, html, `class="status-badge draft"`)
}

func TestMessagesListMarksUnread(t *testing.T) {
	html := MessagesList([]models.Message{
		{ID: 1, Name: "أحمد", Subject: "استشارة", Message: "سؤال", Status: models.MessageStatusUnread, DateReceived: "2025-03-20T10:15:00"},
		{ID: 2, Name: "سارة", Subject: "طلب", Message: "سؤال آخر", Status: models.MessageStatusRead, DateReceived: "2025-03-18T14:30:00"},
	})

	assert.Equal(t, 1, strings.Count(html, "message-item unread"))
	assert.Contains(t, html, "وضع علامة كمقروء")
	assert.Contains(t, html, "أرشفة")
}

func TestMessagesListPlaceholderWhenEmpty(t *testing.T) {
	assert.Contains(t, MessagesList(nil), "لا توجد رسائل حالياً")
}

func TestMessagePreviewTruncatesLongBodies(t *testing.T) {
	short := MessagePreview("مرحبا")
	assert.Equal(t, "مرحبا...", short)

	long := strings.Repeat("م", 150)
	preview := MessagePreview(long)
	assert.Equal(t, strings.Repeat("م", 100)+"...", preview)
}

func TestOfferCardsUseCategoryIcons(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	html := OfferCards([]models.Offer{
		{ID: 1, Title: "خصم", Category: "vitamins", ValidUntil: "2025-06-03"},
		{ID: 2, Title: "هدية", Category: "something-else"},
	}, now)

	assert.Contains(t, html, "fas fa-prescription-bottle")
	assert.Contains(t, html, "fas fa-tags")
}

func TestValidityLabelBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		validUntil string
		want       string
	}{
		{"2025-05-20", "انتهى العرض"},
		{"2025-06-01", "ينتهي اليوم"},
		{"2025-06-02", "ينتهي غداً"},
		{"2025-06-05", "ينتهي خلال 4 أيام"},
		{"2025-08-01", "عرض محدود"},
		{"", "عرض محدود"},
		{"garbage", "عرض محدود"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidityLabel(tt.validUntil, now), "validUntil=%q", tt.validUntil)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 15, 2025", FormatDate("2025-03-15"))
	assert.Equal(t, "Mar 20, 2025", FormatDate("2025-03-20T10:15:00"))
	assert.Equal(t, "Invalid Date", FormatDate(""))
	assert.Equal(t, "Invalid Date", FormatDate("15/03/2025"))
}

func TestFormatArabicDate(t *testing.T) {
	assert.Equal(t, "15 مارس 2025", FormatArabicDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestArticleHTMLMarkup(t *testing.T) {
	content := "## عنوان\n\nفقرة أولى\n- بند أول\n- بند ثانٍ"
	html := string(ArticleHTML(content))

	assert.Contains(t, html, "<h3>عنوان</h3>")
	assert.Contains(t, html, "<p>فقرة أولى</p>")
	assert.Equal(t, 2, strings.Count(html, "<li>"))
}

func TestArticleHTMLEscapesMarkup(t *testing.T) {
	html := string(ArticleHTML("<script>alert(1)</script>"))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
