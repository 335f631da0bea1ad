package usecase

import "sync/atomic"

// ModerationSwitch is the explicit moderation-mode flag. It is owned by
// the service wiring and injected into the components that need it
// instead of being read as ambient state.
type ModerationSwitch struct {
	enabled atomic.Bool
}

// NewModerationSwitch creates a switch in the given initial state.
func NewModerationSwitch(enabled bool) *ModerationSwitch {
	s := &ModerationSwitch{}
	s.enabled.Store(enabled)
	return s
}

func (s *ModerationSwitch) Enable()  { s.enabled.Store(true) }
func (s *ModerationSwitch) Disable() { s.enabled.Store(false) }

// Enabled reports whether ad texts must pass moderation.
func (s *ModerationSwitch) Enabled() bool { return s.enabled.Load() }
