// Package session bounds the set of live resolvers with an LRU registry.
package session

import (
	"container/list"
	"sync"
	"time"

	"github.com/agenthands/ulimi/internal/core"
)

// Entry pairs a session id with its resolver. Each session owns one
// resolver; concurrent requests for the same id share it.
type Entry struct {
	SessionID string
	Resolver  *core.Resolver
	LastUsed  time.Time
}

// Info is a read-only snapshot of one pooled session.
type Info struct {
	SessionID    string    `json:"session_id"`
	RequestCount int64     `json:"request_count"`
	LastUsed     time.Time `json:"last_used"`
	IsDefault    bool      `json:"is_default"`
}

// Pool is an access-ordered registry bounded to MaxSize entries. The
// default session id is exempt from eviction and from Clear. All registry
// mutation happens under one lock; resolver pipelines run outside it.
type Pool struct {
	mu        sync.Mutex
	maxSize   int
	defaultID string
	factory   func(sessionID string) *core.Resolver

	entries map[string]*list.Element
	order   *list.List // front = most recently used
}

func NewPool(maxSize int, defaultID string, factory func(sessionID string) *core.Resolver) *Pool {
	if maxSize <= 0 {
		maxSize = 3
	}
	if defaultID == "" {
		defaultID = "default"
	}
	return &Pool{
		maxSize:   maxSize,
		defaultID: defaultID,
		factory:   factory,
		entries:   make(map[string]*list.Element),
		order:     list.New(),
	}
}

func (p *Pool) DefaultID() string {
	return p.defaultID
}

// GetOrCreate returns the session's resolver, creating it on first
// reference. Existing entries move to the most-recently-used position. A
// creation at capacity evicts the least-recently-used non-default entry;
// when no entry is evictable the pool exceeds capacity by one rather than
// failing.
func (p *Pool) GetOrCreate(sessionID string) *core.Resolver {
	if sessionID == "" {
		sessionID = p.defaultID
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if el, ok := p.entries[sessionID]; ok {
		p.order.MoveToFront(el)
		el.Value.(*Entry).LastUsed = time.Now()
		return el.Value.(*Entry).Resolver
	}

	if len(p.entries) >= p.maxSize {
		p.evictLocked()
	}

	entry := &Entry{
		SessionID: sessionID,
		Resolver:  p.factory(sessionID),
		LastUsed:  time.Now(),
	}
	p.entries[sessionID] = p.order.PushFront(entry)
	return entry.Resolver
}

// evictLocked removes the least-recently-used non-default entry.
func (p *Pool) evictLocked() {
	for el := p.order.Back(); el != nil; el = el.Prev() {
		entry := el.Value.(*Entry)
		if entry.SessionID == p.defaultID {
			continue
		}
		p.order.Remove(el)
		delete(p.entries, entry.SessionID)
		return
	}
}

// Clear removes a session from the registry. The default session is
// retained: Clear reports removed=false and leaves its resolver untouched.
func (p *Pool) Clear(sessionID string) (removed bool) {
	if sessionID == p.defaultID {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	el, ok := p.entries[sessionID]
	if !ok {
		return false
	}
	p.order.Remove(el)
	delete(p.entries, sessionID)
	return true
}

// List snapshots all pooled sessions in most-recently-used order.
func (p *Pool) List() []Info {
	p.mu.Lock()
	defer p.mu.Unlock()

	infos := make([]Info, 0, len(p.entries))
	for el := p.order.Front(); el != nil; el = el.Next() {
		entry := el.Value.(*Entry)
		infos = append(infos, Info{
			SessionID:    entry.SessionID,
			RequestCount: entry.Resolver.RequestCount(),
			LastUsed:     entry.LastUsed,
			IsDefault:    entry.SessionID == p.defaultID,
		})
	}
	return infos
}

// Len reports the number of pooled sessions.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
