package background

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultFade matches the one second cross-fade between backdrops.
	DefaultFade = time.Second

	fadeFPS       = 30
	fadeDamping   = 1.0
	fadeTolerance = 0.005
)

// FrameMsg advances the fade identified by ID.
type FrameMsg struct {
	ID int
}

// Fade is a cross-fade between two tints. Progress follows a critically
// damped spring so the blend eases out instead of moving linearly.
type Fade struct {
	id        int
	from      colorful.Color
	to        colorful.Color
	spring    harmonica.Spring
	pos       float64
	vel       float64
	frames    int
	maxFrames int
	running   bool
}

// StaticFade returns a settled fade showing c.
func StaticFade(c colorful.Color) Fade {
	return Fade{from: c, to: c, pos: 1}
}

// NewFade starts a transition from one tint to another over roughly d.
func NewFade(id int, from, to colorful.Color, d time.Duration) Fade {
	f := Fade{id: id, from: from, to: to}
	if d <= 0 {
		f.pos = 1
		return f
	}

	seconds := d.Seconds()
	// A critically damped spring settles in roughly 6/ω seconds.
	angular := 6.0 / seconds
	f.spring = harmonica.NewSpring(harmonica.FPS(fadeFPS), angular, fadeDamping)
	f.maxFrames = int(math.Ceil(seconds*fadeFPS)) * 2
	f.running = true
	return f
}

// ID identifies the fade so stale frames can be discarded.
func (f Fade) ID() int {
	return f.id
}

// Running reports whether more frames are needed.
func (f Fade) Running() bool {
	return f.running
}

// Progress returns the blend position in [0, 1].
func (f Fade) Progress() float64 {
	return math.Max(0, math.Min(1, f.pos))
}

// Color returns the tint for the current frame.
func (f Fade) Color() colorful.Color {
	return f.from.BlendLab(f.to, f.Progress()).Clamped()
}

// Step advances one frame.
func (f *Fade) Step() {
	if !f.running {
		return
	}
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, 1)
	f.frames++
	if (math.Abs(1-f.pos) < fadeTolerance && math.Abs(f.vel) < fadeTolerance) || f.frames >= f.maxFrames {
		f.pos, f.vel = 1, 0
		f.running = false
	}
}

// Frame schedules the next FrameMsg while the fade is running.
func (f Fade) Frame() tea.Cmd {
	if !f.running {
		return nil
	}
	id := f.id
	return tea.Tick(time.Second/fadeFPS, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
