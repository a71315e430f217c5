package osc

import (
	"io"
	"sort"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func quietRegistry() *Registry {
	r := NewRegistry()
	r.SetLogger(charmlog.New(io.Discard))
	return r
}

func TestRegistry_Dispatch(t *testing.T) {
	r := quietRegistry()

	var calls int
	r.RegisterFunc("/test", func(msg *Message) *Message {
		calls++
		return NewMessage("/test/reply")
	})

	resp := r.Dispatch(NewMessage("/test"))
	if calls != 1 {
		t.Errorf("handler invoked %d times, want 1", calls)
	}
	if resp == nil || resp.Address != "/test/reply" {
		t.Errorf("Dispatch() = %v, want /test/reply", resp)
	}

	// Exact match only: no prefix or case-insensitive matching.
	for _, addr := range []string{"/test/sub", "/Test", "/tes"} {
		if resp := r.Dispatch(NewMessage(addr)); resp != nil {
			t.Errorf("Dispatch(%q) = %v, want nil", addr, resp)
		}
	}
	if calls != 1 {
		t.Errorf("handler invoked %d times after non-matching dispatches, want 1", calls)
	}
}

func TestRegistry_Default(t *testing.T) {
	r := quietRegistry()

	if resp := r.Dispatch(NewMessage("/unknown")); resp != nil {
		t.Errorf("Dispatch() with no default = %v, want nil", resp)
	}

	var defaultCalls int
	r.SetDefault(HandlerFunc(func(msg *Message) *Message {
		defaultCalls++
		return NewMessage("/default/reply")
	}))

	resp := r.Dispatch(NewMessage("/unknown"))
	if defaultCalls != 1 {
		t.Errorf("default invoked %d times, want 1", defaultCalls)
	}
	if resp == nil || resp.Address != "/default/reply" {
		t.Errorf("Dispatch() = %v, want /default/reply", resp)
	}

	// A registered handler takes precedence over the default.
	r.RegisterFunc("/known", func(msg *Message) *Message { return nil })
	if resp := r.Dispatch(NewMessage("/known")); resp != nil {
		t.Errorf("Dispatch(/known) = %v, want nil", resp)
	}
	if defaultCalls != 1 {
		t.Errorf("default invoked %d times, want 1", defaultCalls)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	r := quietRegistry()

	var first, second int
	r.RegisterFunc("/test", func(msg *Message) *Message { first++; return nil })
	r.RegisterFunc("/test", func(msg *Message) *Message { second++; return nil })

	r.Dispatch(NewMessage("/test"))
	r.Dispatch(NewMessage("/test"))

	if first != 0 {
		t.Errorf("replaced handler invoked %d times, want 0", first)
	}
	if second != 2 {
		t.Errorf("current handler invoked %d times, want 2", second)
	}
}

func TestRegistry_Addresses(t *testing.T) {
	r := quietRegistry()

	if got := r.Addresses(); len(got) != 0 {
		t.Errorf("Addresses() on empty registry = %v", got)
	}

	r.RegisterFunc("/b", func(msg *Message) *Message { return nil })
	r.RegisterFunc("/a", func(msg *Message) *Message { return nil })
	r.SetDefault(HandlerFunc(func(msg *Message) *Message { return nil }))

	got := r.Addresses()
	sort.Strings(got)
	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Errorf("Addresses() = %v, want [/a /b]", got)
	}
}

func TestRegistry_HandlerPanic(t *testing.T) {
	r := quietRegistry()

	r.RegisterFunc("/boom", func(msg *Message) *Message {
		panic("handler failure")
	})
	r.RegisterFunc("/fine", func(msg *Message) *Message {
		return NewMessage("/ok")
	})

	if resp := r.Dispatch(NewMessage("/boom")); resp != nil {
		t.Errorf("Dispatch() after panic = %v, want nil", resp)
	}

	// The registry keeps working after a handler panic.
	if resp := r.Dispatch(NewMessage("/fine")); resp == nil || resp.Address != "/ok" {
		t.Errorf("Dispatch(/fine) = %v, want /ok", resp)
	}
}
