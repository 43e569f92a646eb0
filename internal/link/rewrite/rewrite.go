// Package rewrite orchestrates the link rewrite pipeline: invoke the
// external capture routine, locate the inserted link span, parse it, and
// replace it with the rendering registered for the active document type.
package rewrite

import (
	"github.com/dshills/linkstorm/internal/engine/buffer"
	"github.com/dshills/linkstorm/internal/link/format"
	"github.com/dshills/linkstorm/internal/link/org"
)

// Engine is the buffer access the rewriter needs: one read to locate and
// parse, conditionally one write to replace.
type Engine interface {
	Text() string
	Len() buffer.ByteOffset
	Replace(start, end buffer.ByteOffset, text string) (buffer.ByteOffset, error)
}

// CursorState reports the current cursor offset.
type CursorState interface {
	Offset() buffer.ByteOffset
}

// DocTyper reports the document type of the active buffer.
type DocTyper interface {
	DocType() string
}

// Inserter is the opaque external link-capture routine. Its buffer side
// effects are entirely its own; the rewriter only relies on a raw link
// having been inserted near the cursor when it returns nil.
type Inserter interface {
	InsertLink() error
}

// InserterFunc adapts a function to the Inserter interface.
type InserterFunc func() error

// InsertLink implements Inserter.
func (f InserterFunc) InsertLink() error {
	return f()
}

// Outcome classifies a rewrite run. None of the non-rewritten outcomes are
// errors; each leaves the buffer as the insertion routine produced it.
type Outcome uint8

const (
	// OutcomeRewritten indicates the span was replaced.
	OutcomeRewritten Outcome = iota
	// OutcomeNoLink indicates no link span was found (or capture was
	// cancelled).
	OutcomeNoLink
	// OutcomeNoFormatter indicates the document type has no registered
	// formatter; the raw native link stands.
	OutcomeNoFormatter
	// OutcomeMalformed indicates a span was found but could not be parsed
	// or replaced.
	OutcomeMalformed
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRewritten:
		return "rewritten"
	case OutcomeNoLink:
		return "no-link"
	case OutcomeNoFormatter:
		return "no-formatter"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Result describes a completed rewrite run.
type Result struct {
	// Outcome classifies the run.
	Outcome Outcome

	// Span is the located link span (zero value unless a span was found).
	Span org.Span

	// DocType is the document type queried during the run.
	DocType string

	// Replacement is the formatter output (empty unless rewritten).
	Replacement string
}

// Config carries the rewriter's collaborators.
type Config struct {
	// Engine provides buffer access. Required.
	Engine Engine

	// Cursor provides the current cursor offset. Required.
	Cursor CursorState

	// Document provides the active document type. Required.
	Document DocTyper

	// Formatters is the document-type formatter registry. Required.
	Formatters *format.Registry

	// Inserter is the external capture routine. Optional; when nil the
	// capture step is skipped and the rewriter operates on whatever the
	// buffer already contains.
	Inserter Inserter
}

// Rewriter performs document-type-aware rewriting of captured links.
type Rewriter struct {
	cfg Config
}

// New creates a Rewriter from its collaborators.
func New(cfg Config) *Rewriter {
	return &Rewriter{cfg: cfg}
}

// RewriteLastInserted runs the full pipeline once. The whole run is
// synchronous; each invocation locates its own span. Failure modes degrade
// to leaving the buffer untouched and are reported through the Outcome,
// never as errors toward the host.
func (r *Rewriter) RewriteLastInserted() Result {
	if r.cfg.Engine == nil || r.cfg.Cursor == nil ||
		r.cfg.Document == nil || r.cfg.Formatters == nil {
		return Result{Outcome: OutcomeNoLink}
	}

	// Step 1: external capture. An error means the capture was cancelled
	// or produced nothing; that is a silent no-op.
	if r.cfg.Inserter != nil {
		if err := r.cfg.Inserter.InsertLink(); err != nil {
			return Result{Outcome: OutcomeNoLink}
		}
	}

	// Step 2: locate the span around the cursor.
	pos := r.cfg.Cursor.Offset()
	if end := r.cfg.Engine.Len(); pos > end {
		pos = end
	}
	span, ok := org.FindAround(r.cfg.Engine.Text(), pos)
	if !ok {
		return Result{Outcome: OutcomeNoLink}
	}

	// Step 3: parse. A malformed span is handled like no span at all.
	link, err := org.Parse(span.Raw)
	if err != nil {
		return Result{Outcome: OutcomeMalformed, Span: span}
	}

	// Steps 4-5: formatter lookup for the current document type.
	docType := r.cfg.Document.DocType()
	formatter, ok := r.cfg.Formatters.Lookup(docType)
	if !ok {
		return Result{Outcome: OutcomeNoFormatter, Span: span, DocType: docType}
	}

	// Step 6: literal replacement of the exact span extent. The span
	// boundaries located above are reused as-is; no second search.
	replacement := formatter.Format(link.URL, link.Description)
	if _, err := r.cfg.Engine.Replace(span.Range.Start, span.Range.End, replacement); err != nil {
		return Result{Outcome: OutcomeMalformed, Span: span, DocType: docType}
	}

	return Result{
		Outcome:     OutcomeRewritten,
		Span:        span,
		DocType:     docType,
		Replacement: replacement,
	}
}
