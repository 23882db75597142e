package overlay

import "time"

// TriggerMode is an input event class that opens or closes a floating
// surface. Modes combine as a bitmask so a surface can respond to several
// classes at once.
type TriggerMode uint8

const (
	TriggerHover TriggerMode = 1 << iota
	TriggerClick
	TriggerContextMenu
	TriggerFocus
)

// TriggerSet is a combination of trigger modes.
type TriggerSet uint8

// Has reports whether the set contains the mode.
func (s TriggerSet) Has(m TriggerMode) bool { return s&TriggerSet(m) != 0 }

// Triggers combines modes into a set.
func Triggers(modes ...TriggerMode) TriggerSet {
	var s TriggerSet
	for _, m := range modes {
		s |= TriggerSet(m)
	}
	return s
}

// TriggerConfig is the immutable per-instance trigger configuration.
type TriggerConfig struct {
	Modes TriggerSet

	// EnterDelay and LeaveDelay debounce hover and focus transitions.
	EnterDelay time.Duration
	LeaveDelay time.Duration

	// CloseOnOutsideClick closes click/long-press surfaces when the user
	// interacts outside both the anchor and the surface.
	CloseOnOutsideClick bool
}

// Event is a normalized input event fed to the interpreter.
type Event int

const (
	EventPointerEnter Event = iota
	EventPointerLeave
	EventClick
	EventOutsideClick
	EventLongPress
	EventFocusGained
	EventFocusLost
)

// Phase is the interpreter's position in the open/close state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePendingOpen
	PhaseOpen
	PhasePendingClose
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePendingOpen:
		return "pending-open"
	case PhaseOpen:
		return "open"
	default:
		return "pending-close"
	}
}

// TimerKind distinguishes the two pending-timer slots.
type TimerKind int

const (
	TimerOpen TimerKind = iota
	TimerClose
)

// EffectKind is what the host must do in response to an event.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectOpenNow
	EffectCloseNow
	EffectScheduleOpen
	EffectScheduleClose
)

// Effect is the interpreter's output. Schedule effects carry the delay and
// a generation token; a timer whose token no longer matches the current
// generation is stale and must be dropped at delivery.
type Effect struct {
	Kind  EffectKind
	Delay time.Duration
	Seq   int
}

// Interpreter maps trigger events onto open/close intents, applying
// enter/leave delays with cancellable timers. Cooperative schedulers cannot
// revoke a tick once issued, so cancellation is a generation bump: at most
// one pending-open and one pending-close token is live at a time, and
// scheduling or cancelling invalidates the previous token of the same kind.
type Interpreter struct {
	cfg   TriggerConfig
	phase Phase

	openSeq  int
	closeSeq int
}

// NewInterpreter creates an interpreter in the idle phase.
func NewInterpreter(cfg TriggerConfig) *Interpreter {
	return &Interpreter{cfg: cfg}
}

// Phase returns the current machine phase.
func (it *Interpreter) Phase() Phase { return it.phase }

// Config returns the trigger configuration.
func (it *Interpreter) Config() TriggerConfig { return it.cfg }

// Handle consumes one event and returns the effect the host must apply.
// Events for modes absent from the configuration are ignored.
func (it *Interpreter) Handle(ev Event) Effect {
	switch ev {
	case EventPointerEnter:
		if !it.cfg.Modes.Has(TriggerHover) {
			return Effect{}
		}
		return it.enter(it.cfg.EnterDelay)

	case EventPointerLeave:
		if !it.cfg.Modes.Has(TriggerHover) {
			return Effect{}
		}
		return it.leave(it.cfg.LeaveDelay)

	case EventFocusGained:
		if !it.cfg.Modes.Has(TriggerFocus) {
			return Effect{}
		}
		return it.enter(it.cfg.EnterDelay)

	case EventFocusLost:
		if !it.cfg.Modes.Has(TriggerFocus) {
			return Effect{}
		}
		return it.leave(it.cfg.LeaveDelay)

	case EventClick:
		if !it.cfg.Modes.Has(TriggerClick) {
			return Effect{}
		}
		// Click toggles with no delay timers.
		it.cancelPending()
		if it.phase == PhaseOpen || it.phase == PhasePendingClose {
			it.phase = PhaseIdle
			return Effect{Kind: EffectCloseNow}
		}
		it.phase = PhaseOpen
		return Effect{Kind: EffectOpenNow}

	case EventLongPress:
		if !it.cfg.Modes.Has(TriggerContextMenu) {
			return Effect{}
		}
		it.cancelPending()
		if it.phase == PhaseOpen {
			return Effect{}
		}
		it.phase = PhaseOpen
		return Effect{Kind: EffectOpenNow}

	case EventOutsideClick:
		if !it.cfg.CloseOnOutsideClick {
			return Effect{}
		}
		if !it.cfg.Modes.Has(TriggerClick) && !it.cfg.Modes.Has(TriggerContextMenu) {
			return Effect{}
		}
		if it.phase == PhaseIdle {
			return Effect{}
		}
		it.cancelPending()
		it.phase = PhaseIdle
		return Effect{Kind: EffectCloseNow}
	}
	return Effect{}
}

// enter handles pointer-enter and focus-gained.
func (it *Interpreter) enter(delay time.Duration) Effect {
	switch it.phase {
	case PhaseIdle:
		if delay <= 0 {
			it.phase = PhaseOpen
			return Effect{Kind: EffectOpenNow}
		}
		it.phase = PhasePendingOpen
		it.openSeq++
		return Effect{Kind: EffectScheduleOpen, Delay: delay, Seq: it.openSeq}
	case PhasePendingClose:
		// Re-enter before the close fires: cancel and stay open.
		it.closeSeq++
		it.phase = PhaseOpen
		return Effect{}
	default:
		// Already open or already pending open.
		return Effect{}
	}
}

// leave handles pointer-leave and focus-lost.
func (it *Interpreter) leave(delay time.Duration) Effect {
	switch it.phase {
	case PhasePendingOpen:
		// Left before the open fired: cancel, never open.
		it.openSeq++
		it.phase = PhaseIdle
		return Effect{}
	case PhaseOpen:
		if delay <= 0 {
			it.phase = PhaseIdle
			return Effect{Kind: EffectCloseNow}
		}
		it.phase = PhasePendingClose
		it.closeSeq++
		return Effect{Kind: EffectScheduleClose, Delay: delay, Seq: it.closeSeq}
	default:
		return Effect{}
	}
}

// TimerFired delivers a previously scheduled timer. Stale deliveries, where
// the token no longer matches or the machine has moved on, produce no
// effect.
func (it *Interpreter) TimerFired(kind TimerKind, seq int) Effect {
	switch kind {
	case TimerOpen:
		if seq != it.openSeq || it.phase != PhasePendingOpen {
			return Effect{}
		}
		it.phase = PhaseOpen
		return Effect{Kind: EffectOpenNow}
	case TimerClose:
		if seq != it.closeSeq || it.phase != PhasePendingClose {
			return Effect{}
		}
		it.phase = PhaseIdle
		return Effect{Kind: EffectCloseNow}
	}
	return Effect{}
}

// SyncOpen aligns the machine with visibility decided outside the
// interpreter (a controlled value change or a programmatic toggle). Any
// pending timers are cancelled.
func (it *Interpreter) SyncOpen(isOpen bool) {
	it.cancelPending()
	if isOpen {
		it.phase = PhaseOpen
	} else {
		it.phase = PhaseIdle
	}
}

// cancelPending invalidates both timer slots.
func (it *Interpreter) cancelPending() {
	it.openSeq++
	it.closeSeq++
}
