package overlay

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestResolveControlledWins(t *testing.T) {
	tests := []struct {
		name        string
		controlled  *bool
		defaultOpen bool
		want        bool
	}{
		{"controlled true beats default false", boolPtr(true), false, true},
		{"controlled false beats default true", boolPtr(false), true, false},
		{"uncontrolled uses default true", nil, true, true},
		{"uncontrolled uses default false", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s OpenState
			if got := s.Resolve(tt.controlled, tt.defaultOpen); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSeedsDefaultOnce(t *testing.T) {
	var s OpenState
	if got := s.Resolve(nil, true); !got {
		t.Fatal("first resolve should seed default true")
	}
	// The default only seeds the first resolution; later defaults are
	// ignored.
	if got := s.Resolve(nil, false); !got {
		t.Error("second resolve re-seeded from default")
	}
}

func TestRequestUncontrolled(t *testing.T) {
	var s OpenState
	var notified []bool
	s.SetNotify(func(v bool) { notified = append(notified, v) })

	s.Resolve(nil, false)
	s.Request(true, nil)
	if got := s.Resolve(nil, false); !got {
		t.Error("uncontrolled request did not update value")
	}

	// Idempotent request: one state, two notifications.
	s.Request(true, nil)
	if got := s.Resolve(nil, false); !got {
		t.Error("value flipped on repeated request")
	}
	if len(notified) != 2 || !notified[0] || !notified[1] {
		t.Errorf("notifications = %v, want [true true]", notified)
	}
}

func TestRequestControlledNotifiesWithoutMoving(t *testing.T) {
	var s OpenState
	var notified []bool
	s.SetNotify(func(v bool) { notified = append(notified, v) })

	controlled := boolPtr(false)
	if got := s.Resolve(controlled, false); got {
		t.Fatal("controlled false should resolve closed")
	}

	s.Request(true, controlled)
	if got := s.Resolve(controlled, false); got {
		t.Error("controlled value moved on request")
	}
	if len(notified) != 1 || !notified[0] {
		t.Errorf("notifications = %v, want [true]", notified)
	}
}
