// Package background drives the rotating backdrop behind the form.
package background

import (
	"fmt"
	"math/rand/v2"
	"path"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Image is one backdrop: a photograph reference plus the tint used to paint
// it in a terminal.
type Image struct {
	URL  string
	Tint colorful.Color
}

// Name returns a short label derived from the image URL.
func (i Image) Name() string {
	base := path.Base(i.URL)
	return strings.TrimSuffix(base, path.Ext(base))
}

// DefaultImages returns the built-in flower backdrops.
func DefaultImages() []Image {
	return []Image{
		{URL: "https://cdn.pixabay.com/photo/2016/03/16/21/25/chamomile-1261796_1280.jpg", Tint: mustHex("#6B8E23")},
		{URL: "https://cdn.pixabay.com/photo/2020/05/28/19/01/daisies-5232284_1280.jpg", Tint: mustHex("#4F7942")},
		{URL: "https://cdn.pixabay.com/photo/2024/02/13/22/20/flower-meadow-8572000_960_720.jpg", Tint: mustHex("#8FBC5A")},
		{URL: "https://cdn.pixabay.com/photo/2018/05/23/23/10/daisies-3425426_1280.jpg", Tint: mustHex("#5C7F9E")},
		{URL: "https://cdn.pixabay.com/photo/2020/05/04/07/49/flower-5128200_1280.jpg", Tint: mustHex("#C77DA3")},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rotator picks backdrops uniformly at random, with replacement.
type Rotator struct {
	images  []Image
	rnd     *rand.Rand
	current int
}

// NewRotator builds a Rotator over images starting at the first entry. A nil
// source uses a randomly seeded PCG.
func NewRotator(images []Image, src rand.Source) (*Rotator, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("background: at least one image is required")
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	owned := make([]Image, len(images))
	copy(owned, images)

	return &Rotator{images: owned, rnd: rand.New(src)}, nil
}

// Current returns the backdrop currently shown.
func (r *Rotator) Current() Image {
	return r.images[r.current]
}

// Next draws a new backdrop. It may return the current one again.
func (r *Rotator) Next() Image {
	r.current = r.rnd.IntN(len(r.images))
	return r.images[r.current]
}

