package assignment

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Picker chooses k ids out of candidates.
type Picker interface {
	Pick(candidates []string, k int) []string
}

type PickerFunc func(candidates []string, k int) []string

func (f PickerFunc) Pick(candidates []string, k int) []string {
	return f(candidates, k)
}

// Shuffler is the randomness source of RandomPicker.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// RandomPicker picks uniformly at random.
type RandomPicker struct {
	rnd Shuffler
}

// NewRandomPicker uses the process-wide generator when rnd is nil.
// A *rand.Rand passed here must not be shared between goroutines.
func NewRandomPicker(rnd Shuffler) *RandomPicker {
	if rnd == nil {
		rnd = globalShuffler{}
	}
	return &RandomPicker{rnd: rnd}
}

func (p *RandomPicker) Pick(candidates []string, k int) []string {
	shuffled := slices.Clone(candidates)
	p.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(k, len(shuffled))]
}

// OrderedPicker takes the first k candidates in join order.
type OrderedPicker struct{}

func (OrderedPicker) Pick(candidates []string, k int) []string {
	return slices.Clone(candidates[:min(k, len(candidates))])
}

const (
	PickerRandom  = "random"
	PickerOrdered = "ordered"
)

func NewPicker(name string) (Picker, error) {
	switch name {
	case "", PickerRandom:
		return NewRandomPicker(nil), nil
	case PickerOrdered:
		return OrderedPicker{}, nil
	default:
		return nil, fmt.Errorf("unknown reviewer picker %q", name)
	}
}
