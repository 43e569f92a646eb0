package handler_test

import (
	"testing"

	"github.com/dshills/linkstorm/internal/dispatcher/execctx"
	"github.com/dshills/linkstorm/internal/dispatcher/handler"
	"github.com/dshills/linkstorm/internal/input"
)

func TestHandlerFunc(t *testing.T) {
	called := false
	fn := handler.NewHandlerFunc(func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})

	result := fn.Handle(input.Action{Name: "test"}, execctx.New())

	if !called {
		t.Error("expected handler func to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
}

func TestHandlerFuncNil(t *testing.T) {
	fn := &handler.HandlerFunc{}
	result := fn.Handle(input.Action{Name: "test"}, execctx.New())

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for nil func, got %v", result.Status)
	}
}

func TestHandlerFuncCanHandle(t *testing.T) {
	fn := handler.NewHandlerFunc(func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})

	// HandlerFunc always returns true for CanHandle
	if !fn.CanHandle("anything") {
		t.Error("expected CanHandle to return true")
	}
	if fn.Priority() != 0 {
		t.Errorf("expected priority 0, got %d", fn.Priority())
	}
}

// testNamespace is a minimal NamespaceHandler for adapter tests.
type testNamespace struct {
	handled string
}

func (h *testNamespace) Namespace() string { return "test" }

func (h *testNamespace) CanHandle(actionName string) bool { return actionName == "test.go" }

func (h *testNamespace) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	h.handled = action.Name
	return handler.Success()
}

func TestNamespaceAdapter(t *testing.T) {
	ns := &testNamespace{}
	h := handler.NewNamespaceAdapter(ns)

	if !h.CanHandle("test.go") {
		t.Error("expected adapter to delegate CanHandle")
	}
	if h.CanHandle("test.other") {
		t.Error("expected adapter to reject unknown action")
	}

	result := h.Handle(input.Action{Name: "test.go"}, execctx.New())
	if !result.IsOK() {
		t.Errorf("expected OK, got %v", result.Status)
	}
	if ns.handled != "test.go" {
		t.Errorf("expected delegated handling, got %q", ns.handled)
	}
	if h.Priority() != 0 {
		t.Errorf("expected priority 0, got %d", h.Priority())
	}
}
