// Package link provides the handler for link capture rewriting.
package link

import (
	"github.com/dshills/linkstorm/internal/dispatcher/execctx"
	"github.com/dshills/linkstorm/internal/dispatcher/handler"
	"github.com/dshills/linkstorm/internal/input"
	"github.com/dshills/linkstorm/internal/link/rewrite"
)

// Action names for link operations.
const (
	ActionRewriteLastInserted = "link.rewriteLastInserted"
)

// Handler handles link actions.
type Handler struct{}

// NewHandler creates a new link handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the link namespace.
func (h *Handler) Namespace() string {
	return "link"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	return actionName == ActionRewriteLastInserted
}

// HandleAction processes a link action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	switch action.Name {
	case ActionRewriteLastInserted:
		return h.rewriteLastInserted(ctx)
	default:
		return handler.Errorf("unknown link action: %s", action.Name)
	}
}

// rewriteLastInserted invokes the capture routine and rewrites the inserted
// link for the active document type. Every degraded outcome is a no-op; the
// operation never surfaces an error to the user.
func (h *Handler) rewriteLastInserted(ctx *execctx.ExecutionContext) handler.Result {
	if ctx == nil {
		return handler.NoOp()
	}
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}
	if ctx.Document == nil || ctx.Formatters == nil {
		return handler.NoOpWithMessage("link rewriting not configured")
	}

	rw := rewrite.New(rewrite.Config{
		Engine:     ctx.Engine,
		Cursor:     ctx.Cursor,
		Document:   ctx.Document,
		Formatters: ctx.Formatters,
		Inserter:   ctx.Capture,
	})

	result := rw.RewriteLastInserted()

	switch result.Outcome {
	case rewrite.OutcomeRewritten:
		// Cursor lands at the end of the replacement text.
		end := result.Span.Range.Start + int64(len(result.Replacement))
		ctx.Cursor.SetOffset(end)
		return handler.Success().
			WithEdit(handler.Edit{
				Range:   result.Span.Range,
				NewText: result.Replacement,
				OldText: result.Span.Raw,
			}).
			WithData("docType", result.DocType)
	case rewrite.OutcomeNoFormatter:
		return handler.NoOpWithMessage("no formatter for document type " + result.DocType)
	default:
		return handler.NoOpWithMessage("no link to rewrite")
	}
}
