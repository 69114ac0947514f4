package renderer

import (
	"fmt"
	"time"
)

// productCategoryNames maps product categories to their Arabic display labels
var productCategoryNames = map[string]string{
	"vitamins":    "فيتامينات",
	"supplements": "مكملات غذائية",
	"medicines":   "أدوية",
	"beauty":      "تجميل وعناية",
}

// articleCategoryNames maps article categories to their Arabic display labels
var articleCategoryNames = map[string]string{
	"health-tips": "نصائح صحية",
	"medications": "أدوية",
	"wellness":    "عافية",
	"nutrition":   "تغذية",
	"pharmacy":    "صيدلة",
}

// offerIcons maps offer categories to their icon classes
var offerIcons = map[string]string{
	"vitamins":  "fas fa-prescription-bottle",
	"all":       "fas fa-shipping-fast",
	"beauty":    "fas fa-gift",
	"medicines": "fas fa-pills",
}

const defaultOfferIcon = "fas fa-tags"

// ProductCategoryLabel translates a product category; unmapped values pass
// through unchanged
func ProductCategoryLabel(category string) string {
	if name, ok := productCategoryNames[category]; ok {
		return name
	}
	return category
}

// ArticleCategoryLabel translates an article category; unmapped values pass
// through unchanged
func ArticleCategoryLabel(category string) string {
	if name, ok := articleCategoryNames[category]; ok {
		return name
	}
	return category
}

// OfferIcon returns the icon class for an offer category
func OfferIcon(category string) string {
	if icon, ok := offerIcons[category]; ok {
		return icon
	}
	return defaultOfferIcon
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatArabicDate renders a date as "day month year" with Arabic month names
func FormatArabicDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
}

// FormatDate renders a date string as the short form used in admin tables,
// e.g. "Mar 15, 2024". Unparsable input renders as "Invalid Date".
func FormatDate(value string) string {
	t, err := parseDate(value)
	if err != nil {
		return "Invalid Date"
	}
	return t.Format("Jan 2, 2006")
}

// parseDate accepts the date shapes stored in the collections: plain dates,
// local timestamps and RFC 3339.
func parseDate(value string) (time.Time, error) {
	layouts := []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
