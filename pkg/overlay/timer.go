package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerMsg is delivered when a scheduled open/close delay elapses. The
// overlay matches ID and generation token before acting, so a timer that
// was superseded, cancelled, or outlived its component is dropped.
type TimerMsg struct {
	ID   string
	Kind TimerKind
	Seq  int
}

// timerCmd schedules a delayed open/close delivery on the host event loop.
func timerCmd(id string, kind TimerKind, seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimerMsg{ID: id, Kind: kind, Seq: seq}
	})
}

// transitionMsg advances a show/hide transition by one frame.
type transitionMsg struct {
	id    string
	seq   int
	frame int
}

// transitionFrames is the number of style steps in a show/hide transition.
const transitionFrames = 4

// transitionCmd schedules the next transition frame.
func transitionCmd(id string, seq, frame int, total time.Duration) tea.Cmd {
	step := total / transitionFrames
	return tea.Tick(step, func(time.Time) tea.Msg {
		return transitionMsg{id: id, seq: seq, frame: frame}
	})
}
