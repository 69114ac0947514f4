package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-backend/internal/middleware"
	"pharmacy-backend/internal/models"
	"pharmacy-backend/internal/services"
	"pharmacy-backend/internal/store"
)

type routerFixture struct {
	router *gin.Engine
	auth   *services.AuthService
	store  *store.Store
}

// newRouterFixture wires the same route tree the server builds, over an
// in-memory store
func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(store.NewMemoryBackend())

	authService, err := services.NewAuthService("admin", "admin123", "test-secret", 3600)
	require.NoError(t, err)

	productService := services.NewProductService(s)
	newsService := services.NewNewsService(s)
	offerService := services.NewOfferService(s)
	messageService := services.NewMessageService(s)
	statsService := services.NewStatsService(s)
	contactService := services.NewContactService(s, "")

	notifier := NewNotifier(statsService, nil)
	countdownService := services.NewCountdownService(services.TestEndDate(), 0, nil)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(productService, notifier)
	newsHandler := NewNewsHandler(newsService, notifier)
	offerHandler := NewOfferHandler(offerService, countdownService, notifier)
	messageHandler := NewMessageHandler(messageService, notifier)
	contactHandler := NewContactHandler(contactService, notifier)
	dashboardHandler := NewDashboardHandler(statsService, productService, newsService, offerService, messageService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"message": "طريقة الطلب غير صحيحة",
		})
	})

	apiGroup := router.Group("/api/v1")
	apiGroup.GET("/products", productHandler.ListActive)
	apiGroup.GET("/news", newsHandler.ListPublished)
	apiGroup.GET("/news/:id", newsHandler.Get)
	apiGroup.GET("/offers", offerHandler.ListActive)
	apiGroup.GET("/offers/countdown", offerHandler.Countdown)
	apiGroup.POST("/contact", contactHandler.Submit)

	admin := apiGroup.Group("/admin")
	admin.POST("/auth/login", authHandler.Login)
	admin.POST("/auth/logout", authMiddleware.AuthRequired(), authHandler.Logout)
	admin.GET("/auth/session", authMiddleware.AuthRequired(), authHandler.Session)

	protected := admin.Group("/")
	protected.Use(authMiddleware.AuthRequired())
	protected.GET("/products", productHandler.List)
	protected.POST("/products", productHandler.Create)
	protected.PUT("/products/:id", productHandler.Update)
	protected.DELETE("/products/:id", productHandler.Delete)
	protected.GET("/messages", messageHandler.List)
	protected.PUT("/messages/:id/read", messageHandler.ToggleRead)
	protected.POST("/messages/:id/reply", messageHandler.Reply)
	protected.GET("/dashboard/stats", dashboardHandler.Stats)
	protected.GET("/fragments/products", dashboardHandler.ProductsFragment)

	return &routerFixture{router: router, auth: authService, store: s}
}

func (f *routerFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *routerFixture) login(t *testing.T) string {
	t.Helper()
	w := f.do(http.MethodPost, "/api/v1/admin/auth/login", "", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newRouterFixture(t)
	w := f.do(http.MethodPost, "/api/v1/admin/auth/login", "", gin.H{
		"username": "admin",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{
		"/api/v1/admin/products",
		"/api/v1/admin/messages",
		"/api/v1/admin/dashboard/stats",
		"/api/v1/admin/fragments/products",
	} {
		w := f.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}

	w := f.do(http.MethodGet, "/api/v1/admin/products", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(http.MethodGet, "/api/v1/admin/auth/session", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)

	w = f.do(http.MethodPost, "/api/v1/admin/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/v1/admin/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductCRUDFlow(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	// create
	w := f.do(http.MethodPost, "/api/v1/admin/products", token, gin.H{
		"name":     "فيتامين سي",
		"category": "vitamins",
		"price":    "25 ريال",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.Data.ID)
	assert.Equal(t, models.ProductStatusActive, created.Data.Status)

	// appears on the public catalog
	w = f.do(http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "فيتامين سي")
	assert.Contains(t, w.Body.String(), `"count":1`)

	// partial update leaves other fields alone
	w = f.do(http.MethodPut, "/api/v1/admin/products/1", token, gin.H{"price": "30 ريال"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "30 ريال")
	assert.Contains(t, w.Body.String(), "فيتامين سي")

	// delete
	w = f.do(http.MethodDelete, "/api/v1/admin/products/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodDelete, "/api/v1/admin/products/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodGet, "/api/v1/products", "", nil)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(http.MethodPost, "/api/v1/admin/products", token, gin.H{
		"name":     "x",
		"category": "toys",
		"price":    "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNonNumericIDRejected(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(http.MethodPut, "/api/v1/admin/products/abc", token, gin.H{"price": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid ID")
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContactSubmissionStatuses(t *testing.T) {
	f := newRouterFixture(t)

	// valid submission stores a message
	w := postForm(f.router, "/api/v1/contact", url.Values{
		"name":    {"أحمد محمد"},
		"email":   {"ahmed@example.com"},
		"message": {"استفسار عن منتج"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "تم إرسال الرسالة بنجاح")

	token := f.login(t)
	inbox := f.do(http.MethodGet, "/api/v1/admin/messages", token, nil)
	assert.Contains(t, inbox.Body.String(), `"count":1`)
	assert.Contains(t, inbox.Body.String(), `"status":"unread"`)

	// missing fields
	w = postForm(f.router, "/api/v1/contact", url.Values{"name": {"أحمد"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "الرجاء ملء جميع الحقول المطلوبة")

	// invalid email
	w = postForm(f.router, "/api/v1/contact", url.Values{
		"name":    {"أحمد"},
		"email":   {"not-an-email"},
		"message": {"x"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "عنوان البريد الإلكتروني غير صحيح")

	// wrong method
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "طريقة الطلب غير صحيحة")
}

func TestMessageReplyMarksRead(t *testing.T) {
	f := newRouterFixture(t)

	postForm(f.router, "/api/v1/contact", url.Values{
		"name":    {"أحمد"},
		"email":   {"ahmed@example.com"},
		"message": {"سؤال"},
	})

	token := f.login(t)

	w := f.do(http.MethodPost, "/api/v1/admin/messages/1/reply", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mailto:ahmed@example.com")
	assert.Contains(t, w.Body.String(), `"status":"read"`)

	// toggle flips it back to unread
	w = f.do(http.MethodPut, "/api/v1/admin/messages/1/read", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unread"`)
}

func TestCountdownEndpointShape(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodGet, "/api/v1/offers/countdown", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			State   string `json:"state"`
			Days    string `json:"days"`
			EndDate string `json:"endDate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "active", resp.Data.State)
	assert.Len(t, resp.Data.Days, 2)
	assert.NotEmpty(t, resp.Data.EndDate)
}

func TestDashboardStatsAndFragments(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	f.do(http.MethodPost, "/api/v1/admin/products", token, gin.H{
		"name": "فيتامين سي", "category": "vitamins", "price": "25 ريال",
	})

	w := f.do(http.MethodGet, "/api/v1/admin/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalProducts":1`)

	w = f.do(http.MethodGet, "/api/v1/admin/fragments/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "فيتامين سي")
}

func TestPublicOffersSplitFeaturedAndCards(t *testing.T) {
	f := newRouterFixture(t)

	require.NoError(t, f.store.SaveRaw(store.CollectionOffers, []byte(`[
		{"id":1,"title":"العرض الرئيسي","category":"vitamins","status":"active","featured":true},
		{"id":2,"title":"بطاقة","category":"beauty","status":"active","featured":false},
		{"id":3,"title":"خامل","status":"inactive","featured":false}
	]`)))

	w := f.do(http.MethodGet, "/api/v1/offers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "العرض الرئيسي")
	assert.Contains(t, body, "بطاقة")
	assert.NotContains(t, body, "خامل")
	assert.Contains(t, body, `"count":1`)
	assert.Contains(t, body, "fas fa-prescription-bottle")
}

func TestPublicNewsShowsPublishedOnly(t *testing.T) {
	f := newRouterFixture(t)

	require.NoError(t, f.store.SaveRaw(store.CollectionNews, []byte(`[
		{"id":1,"title":"منشور","status":"published","content":"## عنوان","datePublished":"2025-03-01"},
		{"id":2,"title":"مسودة","status":"draft","content":"x"}
	]`)))

	w := f.do(http.MethodGet, "/api/v1/news", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "منشور")
	assert.NotContains(t, w.Body.String(), "مسودة")

	// detail view renders the body markup
	w = f.do(http.MethodGet, "/api/v1/news/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Data struct {
			ContentHTML string `json:"contentHtml"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Contains(t, detail.Data.ContentHTML, "<h3>")

	w = f.do(http.MethodGet, "/api/v1/news/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
