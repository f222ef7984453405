// Package devlink keeps the most recently issued sign-in link per email so a
// developer can pick it up without reading mail or logs. It is a development
// aid only: entries live in process memory and are lost on restart.
package devlink

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL matches how long a developer may reasonably need a link.
const DefaultTTL = 24 * time.Hour

type Store interface {
	Put(email, link string)
	Get(email string) (string, bool)
	Enabled() bool
}

type memoryStore struct {
	cache *expirable.LRU[string, string]
}

// NewMemoryStore returns a size-bounded store whose entries expire after ttl.
func NewMemoryStore(size int, ttl time.Duration) Store {
	if size <= 0 {
		size = 1024
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryStore{cache: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (s *memoryStore) Put(email, link string) {
	s.cache.Add(normalize(email), link)
}

func (s *memoryStore) Get(email string) (string, bool) {
	return s.cache.Get(normalize(email))
}

func (s *memoryStore) Enabled() bool { return true }

type noop struct{}

// Noop is used in production: nothing is stored and lookups always miss.
func Noop() Store { return noop{} }

func (noop) Put(string, string)        {}
func (noop) Get(string) (string, bool) { return "", false }
func (noop) Enabled() bool             { return false }

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
