// Package registercache answers "is the register open?" without hitting the
// database on every order. Reads are served from a short-lived cached value;
// a stale hit returns immediately and refreshes in the background, so the
// answer can lag the database by at most one TTL.
package registercache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"
)

const (
	defaultTTL          = 5 * time.Second
	defaultPollInterval = 10 * time.Second
)

// FetchFunc resolves the authoritative register state. It reports true when
// a session is currently open.
type FetchFunc func(ctx context.Context) (bool, error)

// Cache is a stale-while-revalidate cache of the register-open flag.
//
// Lifetime of a value:
//   - fresh (age < TTL): served as-is;
//   - stale: served as-is, and a background revalidation is kicked off;
//   - absent (cold start or after Invalidate): fetched synchronously.
//
// Only one revalidation runs at a time. Starting a new one cancels the
// previous, and a finished fetch writes back only if no newer fetch has
// started in the meantime.
type Cache struct {
	fetch FetchFunc
	ttl   time.Duration

	mu         sync.Mutex
	hasValue   bool
	open       bool
	fetchedAt  time.Time
	generation uint64
	cancelPrev context.CancelFunc

	now func() time.Time
}

var _ interfaces.IRegisterStateCache = (*Cache)(nil)

func New(fetch FetchFunc, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Query returns the cached register state. On a cold miss it fetches
// synchronously; if that fetch fails it answers false, refusing order
// intake rather than accepting against an unknown register.
func (c *Cache) Query(ctx context.Context) bool {
	c.mu.Lock()
	if c.hasValue {
		open := c.open
		stale := c.now().Sub(c.fetchedAt) >= c.ttl
		if stale {
			c.startRevalidateLocked()
		}
		c.mu.Unlock()
		return open
	}
	gen := c.nextGenerationLocked()
	c.mu.Unlock()

	open, err := c.fetch(ctx)
	if err != nil {
		log.Printf("[registercache] fetch failed, answering closed: %v", err)
		return false
	}
	c.store(gen, open)
	return open
}

// Invalidate drops the cached value so the next Query refetches. Any
// in-flight revalidation is cancelled; its result must not resurrect the
// value just dropped.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasValue = false
	c.nextGenerationLocked()
}

// StartPolling refreshes the value on a fixed interval until ctx is
// cancelled. It backstops missed invalidation broadcasts.
func (c *Cache) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.mu.Lock()
				c.startRevalidateLocked()
				c.mu.Unlock()
			}
		}
	}()
}

// startRevalidateLocked launches a background fetch superseding any
// in-flight one. Caller holds c.mu.
func (c *Cache) startRevalidateLocked() {
	gen := c.nextGenerationLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPrev = cancel

	go func() {
		defer cancel()
		open, err := c.fetch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("[registercache] revalidation failed, keeping previous value: %v", err)
			}
			return
		}
		c.store(gen, open)
	}()
}

// nextGenerationLocked bumps the generation and cancels the superseded
// fetch. Caller holds c.mu.
func (c *Cache) nextGenerationLocked() uint64 {
	c.generation++
	if c.cancelPrev != nil {
		c.cancelPrev()
		c.cancelPrev = nil
	}
	return c.generation
}

// store writes back a fetch result unless a newer fetch has started.
func (c *Cache) store(gen uint64, open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.hasValue = true
	c.open = open
	c.fetchedAt = c.now()
}
