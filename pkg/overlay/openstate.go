package overlay

// OpenState reconciles controlled and uncontrolled visibility. When the
// caller supplies a controlled value it always wins and the internal value
// is never read; otherwise the store tracks visibility itself, seeded by
// the default on first resolution.
//
// Change requests notify the registered callback in both modes: a
// controlled host still receives change notifications, it just decides
// whether to honor them.
type OpenState struct {
	seeded bool
	value  bool
	notify func(bool)
}

// SetNotify registers the change-notification callback.
func (s *OpenState) SetNotify(fn func(bool)) { s.notify = fn }

// Resolve returns the effective visibility. A non-nil controlled value wins
// unconditionally; otherwise the internal value is returned, seeded by
// defaultOpen on the first call.
func (s *OpenState) Resolve(controlled *bool, defaultOpen bool) bool {
	if !s.seeded {
		s.value = defaultOpen
		s.seeded = true
	}
	if controlled != nil {
		return *controlled
	}
	return s.value
}

// Request records a visibility change. The internal value is updated only
// when uncontrolled; the notification callback fires regardless.
func (s *OpenState) Request(next bool, controlled *bool) {
	if controlled == nil {
		s.seeded = true
		s.value = next
	}
	if s.notify != nil {
		s.notify(next)
	}
}
