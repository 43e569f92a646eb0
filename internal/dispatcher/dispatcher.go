// Package dispatcher routes actions to their registered handlers.
//
// Handlers register either for exact action names or for a whole namespace
// (the prefix before the first dot, e.g. "link" in
// "link.rewriteLastInserted"). Exact registrations take precedence over
// namespace registrations. Dispatch is synchronous; an action runs to
// completion inside the invocation that triggered it.
package dispatcher

import (
	"strings"
	"sync"

	"github.com/dshills/linkstorm/internal/dispatcher/execctx"
	"github.com/dshills/linkstorm/internal/dispatcher/handler"
	"github.com/dshills/linkstorm/internal/input"
)

// Dispatcher resolves actions to handlers and executes them.
type Dispatcher struct {
	mu         sync.RWMutex
	registry   *Registry
	namespaces map[string]handler.NamespaceHandler
	ctx        *execctx.ExecutionContext
}

// New creates a dispatcher with an empty registry.
func New() *Dispatcher {
	return &Dispatcher{
		registry:   NewRegistry(),
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// Register adds a handler for an exact action name.
func (d *Dispatcher) Register(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterNamespace adds a handler for every action in a namespace.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.namespaces[h.Namespace()] = h
}

// SetContext sets the execution context passed to handlers.
func (d *Dispatcher) SetContext(ctx *execctx.ExecutionContext) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctx = ctx
}

// Context returns the active execution context.
func (d *Dispatcher) Context() *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ctx
}

// Dispatch resolves and executes an action.
// An unknown action yields an error result; the dispatcher never panics.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrEmptyAction)
	}

	ctx := d.Context()

	// Exact registrations win.
	if h := d.registry.Get(action.Name); h != nil {
		return h.Handle(action, ctx)
	}

	// Fall back to the namespace handler.
	if ns, ok := d.namespaceFor(action.Name); ok {
		if ns.CanHandle(action.Name) {
			return ns.HandleAction(action, ctx)
		}
	}

	return handler.Errorf("no handler for action: %s", action.Name)
}

// Has returns true if some handler can process the action.
func (d *Dispatcher) Has(actionName string) bool {
	if d.registry.Has(actionName) {
		return true
	}
	if ns, ok := d.namespaceFor(actionName); ok {
		return ns.CanHandle(actionName)
	}
	return false
}

// namespaceFor returns the namespace handler for an action name.
func (d *Dispatcher) namespaceFor(actionName string) (handler.NamespaceHandler, bool) {
	namespace, _, ok := strings.Cut(actionName, ".")
	if !ok {
		return nil, false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	ns, found := d.namespaces[namespace]
	return ns, found
}
