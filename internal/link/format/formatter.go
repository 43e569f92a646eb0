// Package format provides document-type-aware link formatters and the
// registry that dispatches on the active document type.
package format

// Formatter renders a captured (url, description) pair as replacement text
// for one document type. Implementations are pure and stateless.
type Formatter interface {
	// Format returns the replacement text for the link.
	Format(url, description string) string

	// DocType returns the document type this formatter targets.
	DocType() string
}

// Func adapts a plain function to the Formatter interface.
type Func struct {
	docType string
	fn      func(url, description string) string
}

// NewFunc creates a Func formatter for the given document type.
func NewFunc(docType string, fn func(url, description string) string) *Func {
	return &Func{docType: docType, fn: fn}
}

// Format implements Formatter.Format.
func (f *Func) Format(url, description string) string {
	if f.fn == nil {
		return ""
	}
	return f.fn(url, description)
}

// DocType implements Formatter.DocType.
func (f *Func) DocType() string {
	return f.docType
}
