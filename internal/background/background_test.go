package background

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultImagesHasFiveEntries(t *testing.T) {
	images := DefaultImages()
	require.Len(t, images, 5)
	assert.Equal(t, "chamomile-1261796_1280", images[0].Name())
}

func TestNewRotatorRequiresImages(t *testing.T) {
	_, err := NewRotator(nil, nil)
	require.Error(t, err)
}

func TestRotatorStartsAtFirstImage(t *testing.T) {
	r, err := NewRotator(DefaultImages(), rand.NewPCG(1, 2))
	require.NoError(t, err)
	assert.Equal(t, DefaultImages()[0], r.Current())
}

func TestRotatorPicksStayInSetAndCoverAll(t *testing.T) {
	images := DefaultImages()
	r, err := NewRotator(images, rand.NewPCG(7, 11))
	require.NoError(t, err)

	valid := make(map[string]bool, len(images))
	for _, img := range images {
		valid[img.URL] = true
	}

	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		next := r.Next()
		require.True(t, valid[next.URL], "unexpected image %s", next.URL)
		require.Equal(t, next, r.Current())
		seen[next.URL]++
	}

	assert.Len(t, seen, len(images))
}

func TestRotatorDoesNotAliasInput(t *testing.T) {
	images := DefaultImages()
	r, err := NewRotator(images, rand.NewPCG(1, 1))
	require.NoError(t, err)

	images[0].URL = "mutated"
	assert.NotEqual(t, "mutated", r.Current().URL)
	assert.NotEqual(t, "mutated", r.images[0].URL)
}

func TestScheduleAcceptsOnlyCurrentGeneration(t *testing.T) {
	s := NewSchedule(10 * time.Second)
	require.True(t, s.Active())
	require.NotNil(t, s.Arm())

	current := TickMsg{Gen: s.Gen()}
	assert.True(t, s.Accept(current))
	assert.False(t, s.Accept(TickMsg{Gen: s.Gen() - 1}))

	s.Cancel()
	assert.False(t, s.Active())
	assert.False(t, s.Accept(current), "ticks armed before cancel must be dropped")
	assert.Nil(t, s.Arm())
}

func TestScheduleDefaultsInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewSchedule(0).Interval())
}

func TestFadeConvergesToTarget(t *testing.T) {
	from, _ := colorful.Hex("#000000")
	to, _ := colorful.Hex("#FFFFFF")
	f := NewFade(3, from, to, time.Second)

	require.True(t, f.Running())
	require.NotNil(t, f.Frame())
	assert.Equal(t, 3, f.ID())

	last := f.Progress()
	for i := 0; i < 200 && f.Running(); i++ {
		f.Step()
		assert.GreaterOrEqual(t, f.Progress(), last-1e-9)
		last = f.Progress()
	}

	assert.False(t, f.Running())
	assert.Nil(t, f.Frame())
	assert.Equal(t, 1.0, f.Progress())
	assert.Equal(t, "#ffffff", f.Color().Hex())
}

func TestFadeWithZeroDurationIsImmediate(t *testing.T) {
	from, _ := colorful.Hex("#102030")
	to, _ := colorful.Hex("#405060")
	f := NewFade(1, from, to, 0)

	assert.False(t, f.Running())
	assert.Equal(t, "#405060", f.Color().Hex())
}

func TestStaticFade(t *testing.T) {
	c, _ := colorful.Hex("#abcdef")
	f := StaticFade(c)
	assert.False(t, f.Running())
	assert.Equal(t, c.Hex(), f.Color().Hex())
	assert.Equal(t, c, f.to)
}
