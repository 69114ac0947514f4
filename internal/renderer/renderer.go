// Package renderer turns collection contents into display fragments for the
// admin panel and the public page. It keeps no state of its own: every
// function recomputes its output from the records it is handed.
package renderer

import (
	"fmt"
	"html/template"
	"log"
	"math"
	"strings"
	"time"

	"pharmacy-backend/internal/models"
)

// Stats holds the four dashboard counters
type Stats struct {
	TotalProducts     int `json:"totalProducts"`
	PublishedArticles int `json:"publishedArticles"`
	ActiveOffers      int `json:"activeOffers"`
	UnreadMessages    int `json:"unreadMessages"`
}

// ComputeStats recomputes the dashboard counters from current contents
func ComputeStats(products []models.Product, articles []models.Article, offers []models.Offer, messages []models.Message) Stats {
	stats := Stats{TotalProducts: len(products)}
	for _, a := range articles {
		if a.Status == models.ArticleStatusPublished {
			stats.PublishedArticles++
		}
	}
	for _, o := range offers {
		if o.Status == models.OfferStatusActive {
			stats.ActiveOffers++
		}
	}
	for _, m := range messages {
		if m.Status == models.MessageStatusUnread {
			stats.UnreadMessages++
		}
	}
	return stats
}

var fragments = template.Must(template.New("fragments").Parse(`
{{define "products"}}{{if not .}}<tr><td colspan="6">لا توجد منتجات حالياً</td></tr>{{else}}{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.Name}}</td>
<td>{{.CategoryLabel}}</td>
<td>{{.Price}}</td>
<td><span class="status-badge {{.StatusClass}}">{{.Status}}</span></td>
<td><div class="action-buttons">
<button class="btn-icon edit" data-id="{{.ID}}"><i class="fas fa-edit"></i></button>
<button class="btn-icon delete" data-id="{{.ID}}"><i class="fas fa-trash"></i></button>
</div></td>
</tr>
{{end}}{{end}}{{end}}

{{define "news"}}{{if not .}}<tr><td colspan="6">لا توجد مقالات حالياً</td></tr>{{else}}{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.Title}}</td>
<td>{{.Author}}</td>
<td>{{.Date}}</td>
<td><span class="status-badge {{.StatusClass}}">{{.Status}}</span></td>
<td><div class="action-buttons">
<button class="btn-icon edit" data-id="{{.ID}}"><i class="fas fa-edit"></i></button>
<button class="btn-icon delete" data-id="{{.ID}}"><i class="fas fa-trash"></i></button>
</div></td>
</tr>
{{end}}{{end}}{{end}}

{{define "messages"}}{{if not .}}<div class="no-messages">لا توجد رسائل حالياً</div>{{else}}{{range .}}<div class="message-item{{if .Unread}} unread{{end}}">
<div class="message-header"><h4>{{.Name}}</h4><span class="message-time">{{.Date}}</span></div>
<p class="message-subject">{{.Subject}}</p>
<p class="message-preview">{{.Preview}}</p>
<div class="message-actions">
<button class="btn btn-primary" data-id="{{.ID}}">رد</button>
<button class="btn btn-secondary" data-id="{{.ID}}">{{.ToggleLabel}}</button>
</div>
</div>
{{end}}{{end}}{{end}}

{{define "offers"}}{{range .}}<div class="offer-card">
<div class="offer-icon"><i class="{{.Icon}}"></i></div>
<h4>{{.Title}}</h4>
<p>{{.Description}}</p>
<span class="offer-validity">{{.Validity}}</span>
</div>
{{end}}{{end}}
`))

func render(name string, data any) string {
	var sb strings.Builder
	if err := fragments.ExecuteTemplate(&sb, name, data); err != nil {
		log.Printf("renderer: failed to render %s: %v", name, err)
		return ""
	}
	return sb.String()
}

type productRow struct {
	ID            int
	Name          string
	CategoryLabel string
	Price         string
	Status        string
	StatusClass   string
}

// ProductsTable renders the admin products table body, one row per product,
// or a single placeholder row when the collection is empty
func ProductsTable(products []models.Product) string {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		status := string(p.Status)
		if status == "" {
			status = string(models.ProductStatusActive)
		}
		rows = append(rows, productRow{
			ID:            p.ID,
			Name:          p.Name,
			CategoryLabel: ProductCategoryLabel(string(p.Category)),
			Price:         p.Price,
			Status:        status,
			StatusClass:   strings.ToLower(status),
		})
	}
	return render("products", rows)
}

type newsRow struct {
	ID          int
	Title       string
	Author      string
	Date        string
	Status      string
	StatusClass string
}

// NewsTable renders the admin news table body
func NewsTable(articles []models.Article) string {
	rows := make([]newsRow, 0, len(articles))
	for _, a := range articles {
		status := string(a.Status)
		if status == "" {
			status = string(models.ArticleStatusPublished)
		}
		rows = append(rows, newsRow{
			ID:          a.ID,
			Title:       a.Title,
			Author:      a.Author,
			Date:        FormatDate(a.DatePublished),
			Status:      status,
			StatusClass: strings.ToLower(status),
		})
	}
	return render("news", rows)
}

type messageCard struct {
	ID          int
	Name        string
	Date        string
	Subject     string
	Preview     string
	Unread      bool
	ToggleLabel string
}

// MessagesList renders the admin messages list, one card per message with a
// truncated body preview; unread messages carry the unread class
func MessagesList(messages []models.Message) string {
	cards := make([]messageCard, 0, len(messages))
	for _, m := range messages {
		toggle := "أرشفة"
		if m.IsUnread() {
			toggle = "وضع علامة كمقروء"
		}
		cards = append(cards, messageCard{
			ID:          m.ID,
			Name:        m.Name,
			Date:        FormatDate(m.DateReceived),
			Subject:     m.Subject,
			Preview:     MessagePreview(m.Message),
			Unread:      m.IsUnread(),
			ToggleLabel: toggle,
		})
	}
	return render("messages", cards)
}

// MessagePreview truncates a message body to its first 100 characters
// followed by an ellipsis
func MessagePreview(body string) string {
	runes := []rune(body)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return string(runes) + "..."
}

type offerCard struct {
	Title       string
	Description string
	Icon        string
	Validity    string
}

// OfferCards renders the non-featured offer cards with their validity labels
func OfferCards(offers []models.Offer, now time.Time) string {
	cards := make([]offerCard, 0, len(offers))
	for _, o := range offers {
		cards = append(cards, offerCard{
			Title:       o.Title,
			Description: o.Description,
			Icon:        OfferIcon(o.Category),
			Validity:    ValidityLabel(o.ValidUntil, now),
		})
	}
	return render("offers", cards)
}

// ValidityLabel computes the day-granularity validity text for a single
// offer card. It is recomputed at render time only, not live-ticking.
func ValidityLabel(validUntil string, now time.Time) string {
	if validUntil == "" {
		return "عرض محدود"
	}
	end, err := parseDate(validUntil)
	if err != nil {
		return "عرض محدود"
	}
	diffDays := int(math.Ceil(end.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return "انتهى العرض"
	case diffDays == 0:
		return "ينتهي اليوم"
	case diffDays == 1:
		return "ينتهي غداً"
	case diffDays <= 7:
		return fmt.Sprintf("ينتهي خلال %d أيام", diffDays)
	default:
		return "عرض محدود"
	}
}

// ArticleHTML formats article content using its lightweight markup: lines
// starting with "##" become headings, lines starting with "-" become list
// items, everything else becomes a paragraph. Blank lines are skipped.
func ArticleHTML(content string) template.HTML {
	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "##"):
			text := strings.TrimSpace(strings.TrimPrefix(line, "##"))
			sb.WriteString("<h3>" + template.HTMLEscapeString(text) + "</h3>")
		case strings.HasPrefix(line, "-"):
			text := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			sb.WriteString("<li>" + template.HTMLEscapeString(text) + "</li>")
		default:
			sb.WriteString("<p>" + template.HTMLEscapeString(line) + "</p>")
		}
	}
	return template.HTML(sb.String())
}
