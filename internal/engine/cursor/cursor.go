// Package cursor provides the insertion point for the editor engine.
package cursor

import (
	"sync"

	"github.com/dshills/linkstorm/internal/engine/buffer"
)

// Cursor tracks a byte offset within a buffer.
// All methods are thread-safe.
type Cursor struct {
	mu     sync.RWMutex
	offset buffer.ByteOffset
}

// New creates a cursor at offset 0.
func New() *Cursor {
	return &Cursor{}
}

// NewAt creates a cursor at the given offset.
func NewAt(offset buffer.ByteOffset) *Cursor {
	c := &Cursor{}
	c.SetOffset(offset)
	return c
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() buffer.ByteOffset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// SetOffset moves the cursor to the given offset.
// Negative offsets clamp to 0.
func (c *Cursor) SetOffset(offset buffer.ByteOffset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if offset < 0 {
		offset = 0
	}
	c.offset = offset
}

// Clamp constrains the cursor to [0, maxOffset].
func (c *Cursor) Clamp(maxOffset buffer.ByteOffset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}
