package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Collection names managed by the store.
const (
	CollectionProducts = "products"
	CollectionNews     = "news"
	CollectionOffers   = "offers"
	CollectionMessages = "messages"
)

// CollectionNames lists the managed collections in seeding order
var CollectionNames = []string{CollectionProducts, CollectionNews, CollectionOffers, CollectionMessages}

// Backend persists raw collection snapshots. Snapshots are whole JSON arrays;
// every write replaces the full collection.
type Backend interface {
	// Load returns the raw snapshot for a collection; ok is false when no
	// snapshot exists yet.
	Load(collection string) (data []byte, ok bool, err error)
	// Save replaces the snapshot for a collection.
	Save(collection string, data []byte) error
}

// Store provides keyed-collection access over a snapshot backend. A single
// store-wide mutex serializes read-modify-write sequences, so last write wins
// at whole-collection granularity.
type Store struct {
	backend Backend
	mu      sync.Mutex

	// highest id handed out per collection during this session; ids are
	// never reused even when the current maximum is deleted
	next map[string]int
}

// New creates a store over the given backend
func New(backend Backend) *Store {
	return &Store{backend: backend, next: make(map[string]int)}
}

// Has reports whether a snapshot exists for the collection
func (s *Store) Has(collection string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok, err := s.backend.Load(collection)
	if err != nil {
		log.Printf("store: failed to probe %s: %v", collection, err)
		return false
	}
	return ok
}

// SaveRaw replaces a collection snapshot with pre-encoded data. The data must
// be a JSON array; used by seeding.
func (s *Store) SaveRaw(collection string, data []byte) error {
	var probe []json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("snapshot for %s is not a JSON array: %w", collection, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Save(collection, data)
}

// Entity is a stored record with an integer id
type Entity[T any] interface {
	GetID() int
	WithID(id int) T
}

// Collection is a typed view over one named collection of the store
type Collection[T Entity[T]] struct {
	store *Store
	name  string
}

// NewCollection creates a typed collection bound to the store
func NewCollection[T Entity[T]](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection name
func (c *Collection[T]) Name() string { return c.name }

// load decodes the current snapshot. A missing or malformed snapshot is
// treated as an empty collection, never propagated. Caller holds the lock.
func (c *Collection[T]) load() []T {
	data, ok, err := c.store.backend.Load(c.name)
	if err != nil {
		log.Printf("store: failed to load %s: %v", c.name, err)
		return nil
	}
	if !ok || len(data) == 0 {
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("store: malformed snapshot for %s, treating as empty: %v", c.name, err)
		return nil
	}
	return records
}

// save replaces the snapshot. Caller holds the lock.
func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	if err := c.store.backend.Save(c.name, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.name, err)
	}
	return nil
}

// nextID assigns ids as max(existing)+1, starting at 1 for an empty
// collection, clamped against the session high-water mark so a deleted
// maximum does not get its id handed out again. Caller holds the lock.
func (c *Collection[T]) nextID(records []T) int {
	max := 0
	for _, r := range records {
		if r.GetID() > max {
			max = r.GetID()
		}
	}
	if hw := c.store.next[c.name]; hw > max {
		max = hw
	}
	id := max + 1
	c.store.next[c.name] = id
	return id
}

// GetAll returns the full ordered sequence of records
func (c *Collection[T]) GetAll() []T {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.load()
}

// GetByID returns the first record with a matching id
func (c *Collection[T]) GetByID(id int) (T, bool) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	for _, r := range c.load() {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Add assigns a fresh id, appends the record and persists the collection.
// The stored record, including its assigned id, is returned.
func (c *Collection[T]) Add(record T) (T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	records := c.load()
	stored := record.WithID(c.nextID(records))
	records = append(records, stored)
	if err := c.save(records); err != nil {
		var zero T
		return zero, err
	}
	return stored, nil
}

// Update applies merge to the record with the matching id and persists the
// result. When no record matches, ok is false and nothing is written.
func (c *Collection[T]) Update(id int, merge func(T) T) (T, bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	records := c.load()
	for i, r := range records {
		if r.GetID() == id {
			updated := merge(r).WithID(id)
			records[i] = updated
			if err := c.save(records); err != nil {
				var zero T
				return zero, false, err
			}
			return updated, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// Delete removes the record with the matching id and reports whether a
// record was actually removed
func (c *Collection[T]) Delete(id int) (bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	records := c.load()
	filtered := records[:0:0]
	for _, r := range records {
		if r.GetID() != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(records) {
		return false, nil
	}
	if err := c.save(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Replace overwrites the whole collection
func (c *Collection[T]) Replace(records []T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.save(records)
}
