// Package notify implements the single-slot transient notification surface.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 3000 * time.Millisecond

// Kind selects how a notification is styled.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// ExpiredMsg is delivered when the auto-hide timer of notification Seq runs out.
type ExpiredMsg struct {
	Seq uint64
}

// Slot holds at most one notification. The last Show wins and restarts the
// auto-hide timer; expirations for superseded notifications are ignored.
type Slot struct {
	duration time.Duration
	message  string
	kind     Kind
	visible  bool
	seq      uint64
}

// NewSlot returns a hidden slot with the given auto-hide duration.
func NewSlot(d time.Duration) Slot {
	if d <= 0 {
		d = DefaultDuration
	}
	return Slot{duration: d}
}

// Show replaces the current notification and returns the auto-hide command.
func (s *Slot) Show(message string, kind Kind) tea.Cmd {
	s.seq++
	s.message = message
	s.kind = kind
	s.visible = true

	seq := s.seq
	return tea.Tick(s.duration, func(time.Time) tea.Msg {
		return ExpiredMsg{Seq: seq}
	})
}

// Expire hides the slot if msg belongs to the notification on display. It
// reports whether anything changed.
func (s *Slot) Expire(msg ExpiredMsg) bool {
	if !s.visible || msg.Seq != s.seq {
		return false
	}
	s.visible = false
	return true
}

// Dismiss hides the slot immediately.
func (s *Slot) Dismiss() {
	s.visible = false
}

// Visible reports whether a notification is showing.
func (s Slot) Visible() bool { return s.visible }

// Message returns the last message shown, even after it was hidden.
func (s Slot) Message() string { return s.message }

// Kind returns the kind of the last message.
func (s Slot) Kind() Kind { return s.kind }

// Seq returns the sequence number of the last message.
func (s Slot) Seq() uint64 { return s.seq }
