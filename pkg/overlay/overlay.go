package overlay

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures an Overlay. Zero values give an uncontrolled,
// hover-triggered surface placed above the anchor with overflow adjustment
// on both axes and no show/hide transition.
type Options struct {
	Placement          Placement
	Overflow           OverflowPolicy
	Trigger            TriggerConfig
	Policy             LifecyclePolicy
	Transition         time.Duration
	ArrowPointAtCenter bool
	DefaultOpen        bool

	// OnOpenChange fires on every open/close request, controlled or not.
	OnOpenChange func(bool)

	// AfterOpenChange fires once per completed show/hide transition.
	AfterOpenChange func(bool)
}

// Option mutates overlay options.
type Option func(*Options)

// WithPlacement sets the preferred placement.
func WithPlacement(p Placement) Option {
	return func(o *Options) { o.Placement = p }
}

// WithOverflow sets the overflow adjustment policy.
func WithOverflow(p OverflowPolicy) Option {
	return func(o *Options) { o.Overflow = p }
}

// WithTrigger sets the trigger modes.
func WithTrigger(modes ...TriggerMode) Option {
	return func(o *Options) { o.Trigger.Modes = Triggers(modes...) }
}

// WithEnterDelay sets the hover/focus enter debounce.
func WithEnterDelay(d time.Duration) Option {
	return func(o *Options) { o.Trigger.EnterDelay = d }
}

// WithLeaveDelay sets the hover/focus leave debounce.
func WithLeaveDelay(d time.Duration) Option {
	return func(o *Options) { o.Trigger.LeaveDelay = d }
}

// WithCloseOnOutsideClick closes click/long-press surfaces on outside
// interaction.
func WithCloseOnOutsideClick(close bool) Option {
	return func(o *Options) { o.Trigger.CloseOnOutsideClick = close }
}

// WithDestroyOnHide unmounts content after each completed close.
func WithDestroyOnHide(destroy bool) Option {
	return func(o *Options) { o.Policy.DestroyOnHide = destroy }
}

// WithForceRender mounts content before the first open.
func WithForceRender(force bool) Option {
	return func(o *Options) { o.Policy.ForceRender = force }
}

// WithFresh rebuilds cached content on every open.
func WithFresh(fresh bool) Option {
	return func(o *Options) { o.Policy.Fresh = fresh }
}

// WithTransition sets the show/hide transition duration. Zero settles
// synchronously.
func WithTransition(d time.Duration) Option {
	return func(o *Options) { o.Transition = d }
}

// WithArrowPointAtCenter aims the arrow at the anchor center instead of the
// placement's alignment point.
func WithArrowPointAtCenter(point bool) Option {
	return func(o *Options) { o.ArrowPointAtCenter = point }
}

// WithDefaultOpen seeds the uncontrolled visibility.
func WithDefaultOpen(open bool) Option {
	return func(o *Options) { o.DefaultOpen = open }
}

// WithOnOpenChange registers the change-notification callback.
func WithOnOpenChange(fn func(bool)) Option {
	return func(o *Options) { o.OnOpenChange = fn }
}

// WithAfterOpenChange registers the transition-settled callback.
func WithAfterOpenChange(fn func(bool)) Option {
	return func(o *Options) { o.AfterOpenChange = fn }
}

func defaultOptions() Options {
	return Options{
		Placement: PlacementTop,
		Overflow:  OverflowAuto(),
		Trigger:   TriggerConfig{Modes: Triggers(TriggerHover)},
	}
}

// Overlay is the lifecycle host for one floating surface. It owns the
// open-state store, the trigger interpreter, and the lifecycle gate, and
// resolves placement against the anchor geometry supplied by the layout
// pass. All state is per instance; nothing is shared across overlays.
type Overlay struct {
	id   string
	opts Options

	state  OpenState
	interp *Interpreter
	gate   Gate

	controlled *bool
	resolved   bool

	anchor   Rect
	viewport Rect
	result   PlacementResult

	animSeq  int
	frame    int
	animOpen bool

	alive bool
}

// New creates an overlay host. The id must be unique among overlays fed by
// the same event loop; it routes timer messages back to their instance.
func New(id string, opts ...Option) *Overlay {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	o := &Overlay{
		id:     id,
		opts:   options,
		interp: NewInterpreter(options.Trigger),
		gate:   NewGate(options.Policy),
		alive:  true,
	}
	o.state.SetNotify(func(next bool) {
		if o.alive && o.opts.OnOpenChange != nil {
			o.opts.OnOpenChange(next)
		}
	})
	o.resolved = o.state.Resolve(nil, options.DefaultOpen)
	if o.resolved {
		// Mounted open: not a transition, so no settled notification.
		o.gate.Begin(true)
		o.gate.Settle(true)
		o.interp.SyncOpen(true)
		o.frame = transitionFrames
	}
	return o
}

// ID returns the overlay's routing id.
func (o *Overlay) ID() string { return o.id }

// IsOpen returns the resolved visibility.
func (o *Overlay) IsOpen() bool { return o.resolved }

// Mounted reports whether the surface content should be composed. A closing
// surface counts as open until its transition settles, so destroy-on-hide
// unmounts only after the close reveal finishes.
func (o *Overlay) Mounted() bool {
	return o.gate.ShouldMount(o.resolved || !o.gate.Settled())
}

// Epoch identifies the content generation; it changes when a fresh policy
// discards cached content.
func (o *Overlay) Epoch() int { return o.gate.Epoch() }

// Placement returns the last resolved placement.
func (o *Overlay) Placement() PlacementResult { return o.result }

// SetAnchor records the anchor bounds from the layout pass.
func (o *Overlay) SetAnchor(r Rect) { o.anchor = r }

// Anchor returns the current anchor bounds.
func (o *Overlay) Anchor() Rect { return o.anchor }

// SetViewport records the visible viewport bounds.
func (o *Overlay) SetViewport(r Rect) { o.viewport = r }

// SetOpen binds or updates the controlled visibility. Pass nil to return to
// uncontrolled mode. The returned command drives the show/hide transition
// when the resolved visibility changed.
func (o *Overlay) SetOpen(controlled *bool) tea.Cmd {
	o.controlled = controlled
	next := o.state.Resolve(o.controlled, o.opts.DefaultOpen)
	if next == o.resolved {
		return nil
	}
	o.resolved = next
	o.interp.SyncOpen(next)
	return o.beginTransition(next)
}

// Toggle programmatically requests the opposite visibility.
func (o *Overlay) Toggle() tea.Cmd {
	return o.RequestOpen(!o.resolved)
}

// RequestOpen programmatically requests visibility, as if a trigger fired.
// Pending trigger timers are cancelled.
func (o *Overlay) RequestOpen(next bool) tea.Cmd {
	if !o.alive {
		return nil
	}
	o.interp.SyncOpen(next)
	return o.request(next)
}

// HandleEvent feeds one trigger event through the interpreter.
func (o *Overlay) HandleEvent(ev Event) tea.Cmd {
	if !o.alive {
		return nil
	}
	return o.applyEffect(o.interp.Handle(ev))
}

// Update routes timer and transition messages. Messages for other overlays
// or stale generations are ignored.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	if !o.alive {
		return nil
	}
	switch msg := msg.(type) {
	case TimerMsg:
		if msg.ID != o.id {
			return nil
		}
		return o.applyEffect(o.interp.TimerFired(msg.Kind, msg.Seq))

	case transitionMsg:
		if msg.id != o.id || msg.seq != o.animSeq {
			return nil
		}
		o.frame = msg.frame
		if o.frame >= transitionFrames {
			o.settle()
			return nil
		}
		return transitionCmd(o.id, o.animSeq, o.frame+1, o.opts.Transition)
	}
	return nil
}

// Teardown marks the overlay dead. Pending timers and transitions are
// abandoned; no callback fires afterwards.
func (o *Overlay) Teardown() {
	o.alive = false
	o.interp.SyncOpen(o.resolved)
}

func (o *Overlay) applyEffect(eff Effect) tea.Cmd {
	switch eff.Kind {
	case EffectOpenNow:
		return o.request(true)
	case EffectCloseNow:
		return o.request(false)
	case EffectScheduleOpen:
		return timerCmd(o.id, TimerOpen, eff.Seq, eff.Delay)
	case EffectScheduleClose:
		return timerCmd(o.id, TimerClose, eff.Seq, eff.Delay)
	}
	return nil
}

// request records an open/close intent. Controlled overlays only notify;
// the visibility moves when the owner calls SetOpen.
func (o *Overlay) request(next bool) tea.Cmd {
	o.state.Request(next, o.controlled)
	resolved := o.state.Resolve(o.controlled, o.opts.DefaultOpen)
	if resolved == o.resolved {
		return nil
	}
	o.resolved = resolved
	return o.beginTransition(resolved)
}

func (o *Overlay) beginTransition(next bool) tea.Cmd {
	o.gate.Begin(next)
	o.animSeq++
	o.animOpen = next
	if o.opts.Transition <= 0 {
		o.frame = transitionFrames
		o.settle()
		return nil
	}
	o.frame = 0
	return transitionCmd(o.id, o.animSeq, 1, o.opts.Transition)
}

func (o *Overlay) settle() {
	if o.gate.Settle(o.animOpen) && o.alive && o.opts.AfterOpenChange != nil {
		o.opts.AfterOpenChange(o.animOpen)
	}
}

// Visible reports whether the surface should be painted this frame. A
// closing surface stays visible until its transition settles.
func (o *Overlay) Visible() bool {
	return o.resolved || !o.gate.Settled()
}

// RenderInto composites the surface content over the base frame at the
// resolved position, applying the show/hide reveal. The resolved placement
// is retained for ArrowCell.
func (o *Overlay) RenderInto(base, content string) string {
	if !o.Visible() {
		return base
	}
	content = o.reveal(content)
	if content == "" {
		return base
	}
	size := Size{W: lipgloss.Width(content), H: lipgloss.Height(content)}
	o.result = ResolvePlacement(PlacementRequest{
		Anchor:    o.anchor,
		Popup:     size,
		Viewport:  o.viewport,
		Preferred: o.opts.Placement,
		Overflow:  o.opts.Overflow,
	})
	return Composite(base, content, o.result.Pos)
}

// ArrowCell returns the viewport cell where the arrow glyph belongs for the
// last rendered surface of the given size.
func (o *Overlay) ArrowCell(size Size) Point {
	off := ArrowOffset(o.result, PlacementRequest{
		Anchor: o.anchor,
		Popup:  size,
	}, o.opts.ArrowPointAtCenter)
	return Point{X: o.result.Pos.X + off.X, Y: o.result.Pos.Y + off.Y}
}

// reveal applies the line-stepped show/hide transition to the content.
// Opening grows the surface from its attachment edge; closing shrinks it.
func (o *Overlay) reveal(content string) string {
	if o.opts.Transition <= 0 || o.frame >= transitionFrames {
		if !o.resolved {
			return ""
		}
		return content
	}
	lines := strings.Split(content, "\n")
	progress := o.frame
	if !o.animOpen {
		progress = transitionFrames - o.frame
	}
	keep := len(lines) * progress / transitionFrames
	if keep <= 0 {
		return ""
	}
	if keep >= len(lines) {
		return content
	}
	// Grow away from the anchor: top placements reveal bottom-up so the
	// surface appears to expand from the anchor edge.
	if o.opts.Placement.Side() == SideTop {
		return strings.Join(lines[len(lines)-keep:], "\n")
	}
	return strings.Join(lines[:keep], "\n")
}
