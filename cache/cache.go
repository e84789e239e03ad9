package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached solution lives when no TTL is given.
const DefaultTTL = 10 * time.Minute

const cleanupInterval = time.Minute

type CacheItem struct {
	Value      []byte
	Expiration int64
}

// Cache is an in-memory SolutionStore whose entries expire after a TTL.
type Cache struct {
	items map[string]*CacheItem
	ttl   time.Duration
	mutex sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

func NewCache(ttl time.Duration) *Cache {
	return newCache(ttl, cleanupInterval)
}

func newCache(ttl, interval time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache := &Cache{
		items: make(map[string]*CacheItem),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go cache.cleanup(interval)
	return cache
}

// Set stores a copy of value. A non-positive duration never expires.
func (c *Cache) Set(key string, value []byte, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var expiration int64
	if duration > 0 {
		expiration = time.Now().Add(duration).UnixNano()
	}
	c.items[key] = &CacheItem{
		Value:      append([]byte(nil), value...),
		Expiration: expiration,
	}
}

func (c *Cache) Lookup(key string) ([]byte, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	if item.Expiration > 0 && time.Now().UnixNano() > item.Expiration {
		c.mutex.Lock()
		// Only drop the entry we saw; a concurrent Set may have replaced it.
		if currentItem, stillExists := c.items[key]; stillExists && currentItem == item {
			delete(c.items, key)
		}
		c.mutex.Unlock()
		return nil, false
	}

	return append([]byte(nil), item.Value...), true
}

// Get implements SolutionStore.
func (c *Cache) Get(key []byte) ([]byte, error) {
	value, _ := c.Lookup(string(key))
	return value, nil
}

// Put implements SolutionStore using the cache TTL.
func (c *Cache) Put(key []byte, value []byte) error {
	c.Set(string(key), value, c.ttl)
	return nil
}

func (c *Cache) Delete(key []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, string(key))
	return nil
}

func (c *Cache) count() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *Cache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

func (c *Cache) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mutex.Lock()
			now := time.Now().UnixNano()
			for key, item := range c.items {
				if item.Expiration > 0 && now > item.Expiration {
					delete(c.items, key)
				}
			}
			c.mutex.Unlock()
		}
	}
}
