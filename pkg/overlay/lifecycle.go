package overlay

// LifecyclePolicy gates whether a surface's content stays composed across
// hide/show cycles.
type LifecyclePolicy struct {
	// DestroyOnHide unmounts the content once a close completes.
	DestroyOnHide bool

	// ForceRender keeps the content mounted even before the first open.
	ForceRender bool

	// Fresh discards cached content on every open so it is rebuilt.
	Fresh bool
}

// Gate tracks mount state and transition settlement for one surface.
// It decides when content is composed and guarantees the settled
// notification fires exactly once per completed open or close.
type Gate struct {
	policy      LifecyclePolicy
	wasEverOpen bool
	epoch       int
	target      bool
	settled     bool
}

// NewGate creates a gate that has never opened and is settled closed.
func NewGate(policy LifecyclePolicy) Gate {
	return Gate{policy: policy, settled: true}
}

// Policy returns the gate's lifecycle policy.
func (g *Gate) Policy() LifecyclePolicy { return g.policy }

// ShouldMount reports whether the surface content should be composed.
func (g *Gate) ShouldMount(isOpen bool) bool {
	return isOpen || g.policy.ForceRender || (g.wasEverOpen && !g.policy.DestroyOnHide)
}

// Epoch identifies the current content generation. Hosts that cache
// rendered content must rebuild when the epoch changes.
func (g *Gate) Epoch() int { return g.epoch }

// Begin records the start of an open or close transition. On a closed→open
// transition the content epoch is bumped when the policy is fresh, or when
// destroy-on-hide unmounted the content during the preceding close, so stale
// caches are rebuilt; the return value reports that bump. Re-targeting an
// in-flight transition is allowed and simply redirects which settlement will
// notify.
func (g *Gate) Begin(isOpen bool) bool {
	if g.target == isOpen && g.settled {
		return false
	}
	bumped := false
	if isOpen && !g.target {
		if g.policy.Fresh || (g.policy.DestroyOnHide && g.wasEverOpen) {
			g.epoch++
			bumped = true
		}
		g.wasEverOpen = true
	}
	g.target = isOpen
	g.settled = false
	return bumped
}

// Settle records that the show/hide transition reached its terminal state.
// It returns true exactly once per completed transition; a stale completion
// for an abandoned target returns false.
func (g *Gate) Settle(isOpen bool) bool {
	if g.settled || g.target != isOpen {
		return false
	}
	g.settled = true
	return true
}

// Settled reports whether no transition is in flight.
func (g *Gate) Settled() bool { return g.settled }
