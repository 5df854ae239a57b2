package layout

import (
	"container/list"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/grindlemire/go-tuicore/internal/debug"
)

// DefaultCacheSize is the number of solved layouts a Cache keeps when
// created with a non-positive capacity.
const DefaultCacheSize = 500

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache memoizes Solve results in a bounded LRU.
//
// Solving is a pure function of (area, layout), so entries never go stale;
// they only leave the cache through eviction. A Cache is safe for
// concurrent use, and concurrent misses for the same key are solved once.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
	stats    CacheStats

	group singleflight.Group
}

type cacheEntry struct {
	key   string
	rects []Rect
}

// NewCache creates a cache holding at most capacity layouts.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Solve returns the cached split of area for l, solving and storing it on a
// miss. The returned slice is a copy the caller may modify.
func (c *Cache) Solve(area Rect, l Layout) []Rect {
	key := cacheKey(area, l)
	if rects, ok := c.get(key); ok {
		return slices.Clone(rects)
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		c.stats.Misses++
		c.mu.Unlock()

		rects := Solve(area, l)
		c.add(key, rects)
		return rects, nil
	})
	return slices.Clone(v.([]Rect))
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the maximum number of cached layouts.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the hit, miss, and eviction counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Purge drops every cached layout. Counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.entries)
}

func (c *Cache) get(key string) ([]Rect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	c.stats.Hits++
	return el.Value.(*cacheEntry).rects, true
}

func (c *Cache) add(key string, rects []Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, rects: slices.Clone(rects)})

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.stats.Evictions++
		debug.Log("layout cache: evicted entry (size=%d)", c.capacity)
	}
}

// cacheKey encodes every input that affects Solve.
func cacheKey(area Rect, l Layout) string {
	b := make([]byte, 0, 64+len(l.Constraints)*12)
	for _, v := range []int{area.X, area.Y, area.Width, area.Height,
		int(l.Direction), l.Spacing, l.Margin.Horizontal, l.Margin.Vertical, int(l.Justify)} {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}
	for _, con := range l.Constraints {
		b = append(b, '|')
		b = strconv.AppendInt(b, int64(con.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(con.Value), 10)
		b = append(b, '/')
		b = strconv.AppendInt(b, int64(con.Den), 10)
	}
	return string(b)
}
