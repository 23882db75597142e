package overlay

import (
	"testing"
	"time"
)

func hoverConfig(enter, leave time.Duration) TriggerConfig {
	return TriggerConfig{
		Modes:      Triggers(TriggerHover),
		EnterDelay: enter,
		LeaveDelay: leave,
	}
}

func TestHoverDelayedOpen(t *testing.T) {
	it := NewInterpreter(hoverConfig(100*time.Millisecond, 0))

	eff := it.Handle(EventPointerEnter)
	if eff.Kind != EffectScheduleOpen || eff.Delay != 100*time.Millisecond {
		t.Fatalf("enter effect = %+v, want scheduled open with 100ms delay", eff)
	}
	if it.Phase() != PhasePendingOpen {
		t.Fatalf("phase = %v, want pending-open", it.Phase())
	}

	fired := it.TimerFired(TimerOpen, eff.Seq)
	if fired.Kind != EffectOpenNow {
		t.Errorf("timer effect = %+v, want open now", fired)
	}
	if it.Phase() != PhaseOpen {
		t.Errorf("phase = %v, want open", it.Phase())
	}
}

func TestHoverLeaveBeforeOpenFires(t *testing.T) {
	// pointerEnter then pointerLeave before the enter delay elapses: the
	// open is cancelled and the machine stays idle.
	it := NewInterpreter(hoverConfig(100*time.Millisecond, 0))

	eff := it.Handle(EventPointerEnter)
	if it.Handle(EventPointerLeave).Kind != EffectNone {
		t.Error("leave during pending-open should produce no effect")
	}
	if it.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", it.Phase())
	}

	// The already-scheduled timer arrives late and must be dropped.
	if fired := it.TimerFired(TimerOpen, eff.Seq); fired.Kind != EffectNone {
		t.Errorf("stale timer effect = %+v, want none", fired)
	}
	if it.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle after stale timer", it.Phase())
	}
}

func TestHoverReenterCancelsClose(t *testing.T) {
	it := NewInterpreter(hoverConfig(0, 100*time.Millisecond))

	if eff := it.Handle(EventPointerEnter); eff.Kind != EffectOpenNow {
		t.Fatalf("enter with zero delay = %+v, want open now", eff)
	}
	eff := it.Handle(EventPointerLeave)
	if eff.Kind != EffectScheduleClose {
		t.Fatalf("leave = %+v, want scheduled close", eff)
	}

	// Re-enter debounces: cancel the close, stay open.
	if re := it.Handle(EventPointerEnter); re.Kind != EffectNone {
		t.Errorf("re-enter = %+v, want none", re)
	}
	if it.Phase() != PhaseOpen {
		t.Fatalf("phase = %v, want open", it.Phase())
	}
	if fired := it.TimerFired(TimerClose, eff.Seq); fired.Kind != EffectNone {
		t.Errorf("cancelled close fired: %+v", fired)
	}
}

func TestSchedulingSupersedesSameKind(t *testing.T) {
	// Two open schedules in a row: only the newest token is live.
	it := NewInterpreter(hoverConfig(50*time.Millisecond, 0))

	first := it.Handle(EventPointerEnter)
	it.Handle(EventPointerLeave)
	second := it.Handle(EventPointerEnter)

	if first.Seq == second.Seq {
		t.Fatal("second schedule reused the first token")
	}
	if fired := it.TimerFired(TimerOpen, first.Seq); fired.Kind != EffectNone {
		t.Errorf("superseded timer fired: %+v", fired)
	}
	if fired := it.TimerFired(TimerOpen, second.Seq); fired.Kind != EffectOpenNow {
		t.Errorf("live timer = %+v, want open now", fired)
	}
}

func TestClickToggles(t *testing.T) {
	it := NewInterpreter(TriggerConfig{Modes: Triggers(TriggerClick)})

	if eff := it.Handle(EventClick); eff.Kind != EffectOpenNow {
		t.Fatalf("first click = %+v, want open now", eff)
	}
	if eff := it.Handle(EventClick); eff.Kind != EffectCloseNow {
		t.Fatalf("second click = %+v, want close now", eff)
	}
	if it.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", it.Phase())
	}
}

func TestOutsideClick(t *testing.T) {
	it := NewInterpreter(TriggerConfig{
		Modes:               Triggers(TriggerClick),
		CloseOnOutsideClick: true,
	})
	it.Handle(EventClick)

	if eff := it.Handle(EventOutsideClick); eff.Kind != EffectCloseNow {
		t.Errorf("outside click = %+v, want close now", eff)
	}

	// Not configured: outside clicks are ignored.
	it2 := NewInterpreter(TriggerConfig{Modes: Triggers(TriggerClick)})
	it2.Handle(EventClick)
	if eff := it2.Handle(EventOutsideClick); eff.Kind != EffectNone {
		t.Errorf("unconfigured outside click = %+v, want none", eff)
	}
}

func TestLongPressOpens(t *testing.T) {
	it := NewInterpreter(TriggerConfig{
		Modes:               Triggers(TriggerContextMenu),
		CloseOnOutsideClick: true,
	})

	if eff := it.Handle(EventLongPress); eff.Kind != EffectOpenNow {
		t.Fatalf("long press = %+v, want open now", eff)
	}
	if eff := it.Handle(EventLongPress); eff.Kind != EffectNone {
		t.Errorf("repeated long press = %+v, want none", eff)
	}
	if eff := it.Handle(EventOutsideClick); eff.Kind != EffectCloseNow {
		t.Errorf("outside interaction = %+v, want close now", eff)
	}
}

func TestFocusMirrorsHover(t *testing.T) {
	it := NewInterpreter(TriggerConfig{
		Modes:      Triggers(TriggerFocus),
		EnterDelay: 20 * time.Millisecond,
	})

	eff := it.Handle(EventFocusGained)
	if eff.Kind != EffectScheduleOpen {
		t.Fatalf("focus gained = %+v, want scheduled open", eff)
	}
	if lost := it.Handle(EventFocusLost); lost.Kind != EffectNone {
		t.Errorf("focus lost during pending-open = %+v, want none", lost)
	}
	if it.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", it.Phase())
	}
}

func TestUnconfiguredModesIgnored(t *testing.T) {
	it := NewInterpreter(TriggerConfig{Modes: Triggers(TriggerClick)})

	events := []Event{EventPointerEnter, EventPointerLeave, EventLongPress, EventFocusGained, EventFocusLost}
	for _, ev := range events {
		if eff := it.Handle(ev); eff.Kind != EffectNone {
			t.Errorf("event %d on click-only interpreter = %+v, want none", ev, eff)
		}
	}
	if it.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", it.Phase())
	}
}

func TestSyncOpenCancelsPending(t *testing.T) {
	it := NewInterpreter(hoverConfig(50*time.Millisecond, 0))

	eff := it.Handle(EventPointerEnter)
	it.SyncOpen(false)
	if fired := it.TimerFired(TimerOpen, eff.Seq); fired.Kind != EffectNone {
		t.Errorf("timer fired after sync: %+v", fired)
	}

	it.SyncOpen(true)
	if it.Phase() != PhaseOpen {
		t.Errorf("phase = %v, want open after sync", it.Phase())
	}
}
