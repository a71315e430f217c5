package osc

import (
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Handler processes one inbound message. A non-nil return value is sent back
// to the message's sender; nil means no response.
type Handler interface {
	Handle(msg *Message) *Message
}

// HandlerFunc implements the Handler interface for plain functions.
type HandlerFunc func(msg *Message) *Message

// Handle calls itself with the given message.
func (f HandlerFunc) Handle(msg *Message) *Message {
	return f(msg)
}

// Registry maps OSC addresses to handlers and dispatches inbound messages.
// Matching is exact and case-sensitive; there is no pattern matching. Exactly
// one handler is associated with an address at a time, plus at most one
// default handler for addresses with no registration.
//
// All methods are safe for concurrent use, so handlers may be registered
// while a server is dispatching.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	fallback Handler
	log      *charmlog.Logger
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		log:      charmlog.Default(),
	}
}

// SetLogger replaces the logger used to report handler panics.
func (r *Registry) SetLogger(l *charmlog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = l
}

// Register installs the handler for the given address, silently replacing any
// prior registration. The address format is not validated.
func (r *Registry) Register(addr string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[addr] = h
}

// RegisterFunc registers a plain function as the handler for addr.
func (r *Registry) RegisterFunc(addr string, f HandlerFunc) {
	r.Register(addr, f)
}

// SetDefault installs the fallback handler invoked for addresses with no
// registration, replacing any prior default.
func (r *Registry) SetDefault(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Addresses returns all registered addresses in no particular order. The
// default handler's presence is not reflected.
func (r *Registry) Addresses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addrs := make([]string, 0, len(r.handlers))
	for addr := range r.handlers {
		addrs = append(addrs, addr)
	}
	return addrs
}

// Dispatch invokes the handler registered for the message's address, or the
// default handler if none matches, and returns the handler's response. It
// returns nil when no handler applies or the handler produced no response.
//
// A panicking handler is recovered and logged here; it never propagates to
// the caller's serve loop.
func (r *Registry) Dispatch(msg *Message) (resp *Message) {
	r.mu.RLock()
	h, ok := r.handlers[msg.Address]
	if !ok {
		h = r.fallback
	}
	log := r.log
	r.mu.RUnlock()

	if h == nil {
		return nil
	}

	defer func() {
		if err := recover(); err != nil {
			log.Error("recovered handler panic", "address", msg.Address, "panic", err)
			resp = nil
		}
	}()

	return h.Handle(msg)
}
