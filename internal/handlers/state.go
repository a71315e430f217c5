package handlers

import "sync"

// State holds the mutable values the built-in handlers operate on. Handlers
// may run from the server's dispatch goroutine while other goroutines read
// the state, so access is mutex-guarded.
type State struct {
	mu     sync.RWMutex
	volume float32
	note   int32
	vel    int32
	params map[string]float32
}

// NewState returns an empty State.
func NewState() *State {
	return &State{params: make(map[string]float32)}
}

// Volume returns the master volume in [0, 1].
func (s *State) Volume() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// SetVolume stores the master volume.
func (s *State) SetVolume(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
}

// Note returns the last received MIDI note and velocity.
func (s *State) Note() (note, velocity int32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.note, s.vel
}

// SetNote stores the last received MIDI note and velocity.
func (s *State) SetNote(note, velocity int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.note = note
	s.vel = velocity
}

// Param returns the named control parameter.
func (s *State) Param(name string) (float32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.params[name]
	return v, ok
}

// SetParam stores the named control parameter.
func (s *State) SetParam(name string, v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params[name] = v
}
