package store

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-backend/internal/models"
)

func TestSeedAllFromRemoteDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products.json":
			w.Write([]byte(`[{"id":1,"name":"فيتامين سي","category":"vitamins","status":"active"}]`))
		case "/news.json":
			w.Write([]byte(`[{"id":1,"title":"مقال","status":"published"}]`))
		case "/offers.json":
			w.Write([]byte(`[]`))
		case "/messages.json":
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	s := New(NewMemoryBackend())
	NewSeeder(s, server.URL).SeedAll()

	products := NewCollection[models.Product](s, CollectionProducts)
	all := products.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "فيتامين سي", all[0].Name)

	for _, name := range CollectionNames {
		assert.True(t, s.Has(name), "collection %s should be seeded", name)
	}
}

func TestSeedAllFallsBackWhenRemoteUnreachable(t *testing.T) {
	s := New(NewMemoryBackend())
	NewSeeder(s, "http://127.0.0.1:1").SeedAll()

	for _, name := range CollectionNames {
		assert.True(t, s.Has(name), "collection %s should fall back to samples", name)
	}

	// the fallback carries the built-in sample records
	products := NewCollection[models.Product](s, CollectionProducts)
	all := products.GetAll()
	require.NotEmpty(t, all)
	assert.Equal(t, "فيتامين د3 1000 وحدة", all[0].Name)
}

func TestSeedAllFallsBackOnNonArrayDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"maintenance"}`))
	}))
	defer server.Close()

	s := New(NewMemoryBackend())
	NewSeeder(s, server.URL).SeedAll()

	messages := NewCollection[models.Message](s, CollectionMessages)
	all := messages.GetAll()
	require.NotEmpty(t, all)
	assert.Equal(t, "أحمد محمد", all[0].Name)
}

func TestSeedAllSkipsExistingCollections(t *testing.T) {
	s := New(NewMemoryBackend())
	require.NoError(t, s.SaveRaw(CollectionProducts, []byte(`[{"id":7,"name":"existing"}]`)))

	NewSeeder(s, "").SeedAll()

	products := NewCollection[models.Product](s, CollectionProducts)
	all := products.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, 7, all[0].ID, "existing snapshot must not be reseeded")
}
