package blobs

import "container/list"

// Disposable is implemented by cached values that hold resources which
// must be released on eviction.
type Disposable interface {
	Dispose()
}

type cacheEntry struct {
	key   string
	value interface{}
}

// lruCache is a fixed-capacity cache with least-recently-used eviction.
// It is not safe for concurrent use, the factory serializes access.
type lruCache struct {
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		ll:       list.New(),
		items:    map[string]*list.Element{},
	}
}

func (c *lruCache) get(key string) (interface{}, bool) {
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *lruCache) add(key string, value interface{}) {
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*cacheEntry).value = value
		return
	}
	c.items[key] = c.ll.PushFront(&cacheEntry{key: key, value: value})
	if c.ll.Len() > c.capacity {
		c.evict()
	}
}

func (c *lruCache) evict() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	entry := el.Value.(*cacheEntry)
	delete(c.items, entry.key)
	if d, ok := entry.value.(Disposable); ok {
		d.Dispose()
	}
}

func (c *lruCache) len() int {
	return c.ll.Len()
}
