// Package lua exposes the formatter registry to Lua plugins.
//
// Plugins call linkstorm.register_formatter(doctype, fn) to add link
// renderings for further document types without modifying the core. The
// registered function receives (url, description) and returns the
// replacement text.
package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linkstorm/internal/link/format"
)

// handlerTableName is the global table that pins registered formatter
// functions so they are not garbage collected.
const handlerTableName = "_linkstorm_formatters"

// Host owns a Lua state and bridges plugin-registered formatters into the
// formatter registry.
type Host struct {
	mu         sync.Mutex
	L          *lua.LState
	formatters *format.Registry
	handlers   *lua.LTable
	closed     bool
}

// NewHost creates a Lua host bound to a formatter registry.
func NewHost(formatters *format.Registry) (*Host, error) {
	if formatters == nil {
		return nil, ErrNoRegistry
	}

	L := lua.NewState()
	h := &Host{
		L:          L,
		formatters: formatters,
	}
	h.installModule()
	return h, nil
}

// installModule registers the linkstorm module into the Lua state.
func (h *Host) installModule() {
	// Pin handler functions in a global table to prevent GC.
	h.handlers = h.L.NewTable()
	h.L.SetGlobal(handlerTableName, h.handlers)

	mod := h.L.NewTable()
	h.L.SetField(mod, "register_formatter", h.L.NewFunction(h.registerFormatter))
	h.L.SetField(mod, "formatters", h.L.NewFunction(h.listFormatters))
	h.L.SetGlobal("linkstorm", mod)
}

// registerFormatter implements linkstorm.register_formatter(doctype, fn).
func (h *Host) registerFormatter(L *lua.LState) int {
	docType := L.CheckString(1)
	fn := L.CheckFunction(2)

	L.SetField(h.handlers, docType, fn)
	h.formatters.Register(&Formatter{host: h, docType: docType, fn: fn})
	return 0
}

// listFormatters implements linkstorm.formatters(), returning the registered
// document type names as an array.
func (h *Host) listFormatters(L *lua.LState) int {
	tbl := L.NewTable()
	for _, dt := range h.formatters.Types() {
		tbl.Append(lua.LString(dt))
	}
	L.Push(tbl)
	return 1
}

// LoadScript executes plugin source code. The name labels the chunk in
// error messages.
func (h *Host) LoadScript(name, source string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	if err := h.L.DoString(source); err != nil {
		return fmt.Errorf("running plugin %s: %w", name, err)
	}
	return nil
}

// LoadFile executes a plugin file.
func (h *Host) LoadFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("running plugin file %s: %w", path, err)
	}
	return nil
}

// Close releases the Lua state. Formatters registered by plugins fall back
// to the native rendering once the host is closed.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

// call invokes a pinned Lua function with url and description, returning
// its string result. The LState is not goroutine-safe, so every entry point
// serializes on the host mutex.
func (h *Host) call(fn *lua.LFunction, url, description string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return "", ErrHostClosed
	}

	if err := h.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(url), lua.LString(description)); err != nil {
		return "", fmt.Errorf("formatter call: %w", err)
	}

	ret := h.L.Get(-1)
	h.L.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("formatter returned %s, want string", ret.Type())
	}
	return string(s), nil
}
