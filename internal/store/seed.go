package store

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Seeder populates empty collections once, from remote JSON documents when a
// base URL is configured, otherwise from built-in samples. Collections that
// already have a snapshot are never touched; the store is the system of
// record after first population.
type Seeder struct {
	store   *Store
	baseURL string
	client  *http.Client
}

// NewSeeder creates a seeder fetching {baseURL}/{collection}.json. An empty
// baseURL skips fetching and seeds straight from the built-in samples.
func NewSeeder(s *Store, baseURL string) *Seeder {
	return &Seeder{
		store:   s,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SeedAll seeds every managed collection. It never fails outward; every
// error is absorbed, logged and answered with the fallback sample.
func (s *Seeder) SeedAll() {
	for _, collection := range CollectionNames {
		if s.store.Has(collection) {
			continue
		}
		data, err := s.fetch(collection)
		if err != nil {
			log.Printf("seed: could not load %s data: %v, using fallback", collection, err)
			data = fallbackSample(collection)
		}
		if err := s.store.SaveRaw(collection, data); err != nil {
			log.Printf("seed: fetched %s document unusable: %v, using fallback", collection, err)
			if err := s.store.SaveRaw(collection, fallbackSample(collection)); err != nil {
				log.Printf("seed: failed to seed %s: %v", collection, err)
			}
		}
	}
}

// fetch retrieves the remote seed document for one collection
func (s *Seeder) fetch(collection string) ([]byte, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("no seed URL configured")
	}
	resp, err := s.client.Get(s.baseURL + "/" + collection + ".json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
