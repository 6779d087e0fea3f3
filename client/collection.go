package client

import "sync"

// collection is a small copy-on-write map of entity rows keyed by a derived
// string. Snapshot returns rows safe to hand to a renderer.
type collection[T any] struct {
	mu    sync.RWMutex
	keyFn func(T) string
	rows  map[string]T
	order []string
}

func newCollection[T any](keyFn func(T) string) *collection[T] {
	return &collection[T]{
		keyFn: keyFn,
		rows:  map[string]T{},
	}
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.rows[key])
	}
	return out
}

func (c *collection[T]) get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	row, ok := c.rows[key]
	return row, ok
}

// replaceAll resets the collection to the given rows, preserving their order.
func (c *collection[T]) replaceAll(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = make(map[string]T, len(rows))
	c.order = c.order[:0]
	for _, row := range rows {
		key := c.keyFn(row)
		if _, ok := c.rows[key]; !ok {
			c.order = append(c.order, key)
		}
		c.rows[key] = row
	}
}

// upsert inserts or replaces one row.
func (c *collection[T]) upsert(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.keyFn(row)
	if _, ok := c.rows[key]; !ok {
		c.order = append(c.order, key)
	}
	c.rows[key] = row
}

// patch applies fn to the row at key, if present.
func (c *collection[T]) patch(key string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	row, ok := c.rows[key]
	if !ok {
		return false
	}
	c.rows[key] = fn(row)
	return true
}

func (c *collection[T]) remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rows[key]; !ok {
		return false
	}
	delete(c.rows, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// replaceKey moves a row to a new key in place, keeping its position. Used
// when a temporary id is replaced by the server-assigned identity.
func (c *collection[T]) replaceKey(oldKey string, row T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rows[oldKey]; !ok {
		return false
	}
	newKey := c.keyFn(row)
	delete(c.rows, oldKey)
	c.rows[newKey] = row
	for i, k := range c.order {
		if k == oldKey {
			c.order[i] = newKey
			break
		}
	}
	return true
}
