package background

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is how often the backdrop changes.
const DefaultInterval = 10 * time.Second

// TickMsg fires when a rotation is due.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// Schedule is the owned, cancelable handle for the rotation timer. Each armed
// tick carries the generation it was armed under; Cancel bumps the generation
// so ticks already in flight are ignored.
type Schedule struct {
	interval time.Duration
	gen      int
	active   bool
}

// NewSchedule returns an active schedule.
func NewSchedule(interval time.Duration) Schedule {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Schedule{interval: interval, gen: 1, active: true}
}

// Arm returns a command delivering the next TickMsg, or nil once cancelled.
func (s Schedule) Arm() tea.Cmd {
	if !s.active {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Accept reports whether msg belongs to the live schedule.
func (s Schedule) Accept(msg TickMsg) bool {
	return s.active && msg.Gen == s.gen
}

// Cancel stops the schedule. Pending ticks are dropped by Accept.
func (s *Schedule) Cancel() {
	s.active = false
	s.gen++
}

// Active reports whether the schedule still re-arms.
func (s Schedule) Active() bool {
	return s.active
}

// Interval returns the rotation period.
func (s Schedule) Interval() time.Duration {
	return s.interval
}

// Gen returns the current generation.
func (s Schedule) Gen() int {
	return s.gen
}
