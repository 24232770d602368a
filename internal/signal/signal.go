// Package signal implements the named-event dispatch the gameplay scripts
// communicate through. A component declares the signals it owns, listeners
// connect handlers by name, and emitting a signal invokes the handlers
// synchronously in connection order.
package signal

import (
	"fmt"
	"sync"
)

// Handler receives the payload of an emitted signal.
type Handler func(args ...any)

// Hub routes named signals to their connected handlers.
type Hub struct {
	mu       sync.RWMutex
	declared map[string]bool
	handlers map[string][]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		declared: make(map[string]bool),
		handlers: make(map[string][]Handler),
	}
}

// Declare registers a signal name so it can be connected and emitted.
// Declaring an already declared name is harmless.
func (h *Hub) Declare(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.declared[name] = true
}

// Declared reports whether name has been declared.
func (h *Hub) Declared(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.declared[name]
}

// Connect attaches a handler to a declared signal.
func (h *Hub) Connect(name string, fn Handler) error {
	if fn == nil {
		return fmt.Errorf("nil handler for signal %q", name)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.declared[name] {
		return fmt.Errorf("connect to undeclared signal %q", name)
	}
	h.handlers[name] = append(h.handlers[name], fn)
	return nil
}

// Emit invokes every handler connected to name with the given arguments.
// Emitting a declared signal with no listeners is not an error.
// Handlers run outside the hub lock, so they may emit further signals.
func (h *Hub) Emit(name string, args ...any) error {
	h.mu.RLock()
	if !h.declared[name] {
		h.mu.RUnlock()
		return fmt.Errorf("emit undeclared signal %q", name)
	}
	list := make([]Handler, len(h.handlers[name]))
	copy(list, h.handlers[name])
	h.mu.RUnlock()

	for _, fn := range list {
		fn(args...)
	}
	return nil
}
