// Package overlay implements the lifecycle of floating surfaces (tooltips,
// popovers, dropdown menus) for bubbletea terminal applications: controlled
// and uncontrolled visibility, trigger interpretation with cancellable delay
// timers, overflow-aware placement, and mount/unmount gating across
// hide/show cycles.
//
// # Quick start
//
//	tip := overlay.NewTooltip("save-tip", "Save the current file",
//	    overlay.WithPlacement(overlay.PlacementTop),
//	    overlay.WithEnterDelay(100*time.Millisecond),
//	    overlay.WithLeaveDelay(100*time.Millisecond),
//	)
//
//	// After rendering the frame, register the anchor measured from it:
//	tip.Host().SetAnchor(overlay.Rect{X: 4, Y: 2, W: 8, H: 1})
//	tip.Host().SetViewport(overlay.Rect{W: width, H: height})
//
//	// In Update(), route pointer motion through a HitMap and feed events:
//	cmd := tip.Host().HandleEvent(overlay.EventPointerEnter)
//	cmd = tip.Host().Update(msg) // TimerMsg, transition frames
//
//	// In View():
//	frame = tip.Render(frame)
//
// # Lifecycle
//
// Pointer and focus events flow through the trigger Interpreter, which
// applies enter/leave delays with generation-token timers: scheduling a new
// timer of a kind invalidates the previous one, so rapid toggling never
// leaves two competing timers alive. The resulting open/close intents move
// the OpenState store, which notifies OnOpenChange on every request and
// honors a controlled value when one is bound via SetOpen. Opening resolves
// placement against the anchor and viewport, flipping an overflowing axis
// once and clamping the rest. The lifecycle Gate decides whether content
// stays composed across hide/show cycles (DestroyOnHide, ForceRender,
// Fresh) and fires AfterOpenChange exactly once per settled transition.
//
// All state is scoped per overlay instance and driven by the host event
// loop; there are no cross-instance locks or goroutines. Tearing an overlay
// down suppresses every pending timer and callback.
package overlay
