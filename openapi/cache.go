package openapi

import (
	"sync"
)

// Cache memoizes the patched document for the process lifetime. The base
// document is produced and patched on first access; redundant recomputation
// under concurrent first access is prevented by the mutex, and the patch
// itself is pure either way.
type Cache struct {
	mu      sync.Mutex
	doc     Document
	produce Provider
	code    string
}

// NewCache wires a base-document producer to the patcher. code is the
// top-level envelope code embedded in patched examples.
func NewCache(produce Provider, code string) *Cache {
	return &Cache{produce: produce, code: code}
}

// Document returns the patched document, producing and patching the base on
// first use. A producer failure is returned to the caller and retried on the
// next call; a broken document is never cached.
func (c *Cache) Document() (Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.doc != nil {
		return c.doc, nil
	}
	if c.produce == nil {
		return nil, ErrNoProvider
	}
	base, err := c.produce()
	if err != nil {
		return nil, err
	}
	c.doc = Patch(base, c.code)
	return c.doc, nil
}

// Reset clears the memoized document so the next access rebuilds it. Hosts
// normally never call this within a process lifetime.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.doc = nil
	c.mu.Unlock()
}
