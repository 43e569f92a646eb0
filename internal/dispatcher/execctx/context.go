// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/linkstorm/internal/engine/buffer"
	"github.com/dshills/linkstorm/internal/link/format"
)

// EngineInterface abstracts the text engine for handlers.
type EngineInterface interface {
	// Text operations
	Insert(offset buffer.ByteOffset, text string) (buffer.ByteOffset, error)
	Delete(start, end buffer.ByteOffset) error
	Replace(start, end buffer.ByteOffset, text string) (buffer.ByteOffset, error)

	// Read operations
	Text() string
	TextRange(start, end buffer.ByteOffset) string
	LineText(line uint32) string
	Len() buffer.ByteOffset
	LineCount() uint32

	// Position conversion
	OffsetToPoint(offset buffer.ByteOffset) buffer.Point
	PointToOffset(point buffer.Point) buffer.ByteOffset

	// Revision tracking
	RevisionID() buffer.RevisionID
}

// CursorInterface abstracts the cursor for handlers.
type CursorInterface interface {
	Offset() buffer.ByteOffset
	SetOffset(offset buffer.ByteOffset)
}

// DocumentInterface reports state of the active document.
type DocumentInterface interface {
	// DocType returns the document type identifier for the active buffer
	// (e.g., "org", "html", "text", "go").
	DocType() string
}

// CaptureInterface is the host's native link-insertion routine.
// It inserts a raw link at the cursor using the native link syntax; its
// side effects are entirely its own.
type CaptureInterface interface {
	InsertLink() error
}

// ExecutionContext carries the collaborators handlers need to execute
// actions against the active buffer.
type ExecutionContext struct {
	// Engine provides buffer access.
	Engine EngineInterface

	// Cursor provides cursor access.
	Cursor CursorInterface

	// Document provides read-only document state queries.
	Document DocumentInterface

	// Formatters is the document-type formatter registry.
	Formatters *format.Registry

	// Capture is the external link-insertion routine.
	Capture CaptureInterface
}

// New creates an empty execution context.
func New() *ExecutionContext {
	return &ExecutionContext{}
}

// WithEngine returns the context with the engine set.
func (c *ExecutionContext) WithEngine(e EngineInterface) *ExecutionContext {
	c.Engine = e
	return c
}

// WithCursor returns the context with the cursor set.
func (c *ExecutionContext) WithCursor(cur CursorInterface) *ExecutionContext {
	c.Cursor = cur
	return c
}

// WithDocument returns the context with the document state set.
func (c *ExecutionContext) WithDocument(d DocumentInterface) *ExecutionContext {
	c.Document = d
	return c
}

// WithFormatters returns the context with the formatter registry set.
func (c *ExecutionContext) WithFormatters(r *format.Registry) *ExecutionContext {
	c.Formatters = r
	return c
}

// WithCapture returns the context with the capture routine set.
func (c *ExecutionContext) WithCapture(capture CaptureInterface) *ExecutionContext {
	c.Capture = capture
	return c
}

// ValidateForEdit checks that the context can support buffer edits.
func (c *ExecutionContext) ValidateForEdit() error {
	if c.Engine == nil {
		return ErrNoEngine
	}
	if c.Cursor == nil {
		return ErrNoCursor
	}
	return nil
}
