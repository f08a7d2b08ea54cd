package trigger

import (
	"math"
	"sync"
	"time"

	"github.com/npillmayer/skinwiz/object"
)

// Timing is the easing function of an animation.
type Timing uint8

// Timing functions.
const (
	Linear Timing = iota
	EaseIn
	EaseOut
	EaseInOut
)

// TimingNames maps attribute values to timing functions.
var TimingNames = map[string]Timing{
	"linear":    Linear,
	"easein":    EaseIn,
	"easeout":   EaseOut,
	"easeinout": EaseInOut,
}

func (tf Timing) apply(t float64) float64 {
	switch tf {
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		return (1 - math.Cos(t*math.Pi)) / 2
	}
	return t
}

// Animation interpolates a numeric property.
type Animation struct {
	Name     string
	Property string
	From, To float64
	Duration time.Duration
	Repeat   int  // number of cycles; 0 and 1 run once, negative runs forever
	Reverse  bool // every cycle runs forth and back
	Timing   Timing
}

// ValueAt computes the property value after elapsed time.
func (a *Animation) ValueAt(elapsed time.Duration) (v float64, done bool) {
	if a.Duration <= 0 {
		if a.Reverse {
			return a.From, true
		}
		return a.To, true
	}
	cycle := a.Duration
	if a.Reverse {
		cycle *= 2
	}
	cycles := a.Repeat
	if cycles == 0 {
		cycles = 1
	}
	if cycles > 0 && elapsed >= cycle*time.Duration(cycles) {
		if a.Reverse {
			return a.From, true
		}
		return a.To, true
	}
	pos := float64(elapsed%cycle) / float64(a.Duration)
	if pos > 1 {
		pos = 2 - pos
	}
	return a.From + (a.To-a.From)*a.Timing.apply(pos), false
}

type running struct {
	anim    *Animation
	target  object.Object
	elapsed time.Duration
}

// Animator advances running animations. It does not own a clock; the
// application calls Step regularly.
type Animator struct {
	mu      sync.Mutex
	running []*running
}

// NewAnimator creates an animator without running animations.
func NewAnimator() *Animator {
	return &Animator{}
}

// Start runs anim on target, restarting it if it is already running.
func (an *Animator) Start(anim *Animation, target object.Object) {
	an.mu.Lock()
	defer an.mu.Unlock()
	for _, r := range an.running {
		if r.anim.Name == anim.Name && r.target == target {
			r.anim, r.elapsed = anim, 0
			return
		}
	}
	an.running = append(an.running, &running{anim: anim, target: target})
	target.SetProperty(anim.Property, anim.From)
}

// Stop ends a named animation on target.
func (an *Animator) Stop(name string, target object.Object) {
	an.mu.Lock()
	defer an.mu.Unlock()
	an.remove(func(r *running) bool { return r.anim.Name == name && r.target == target })
}

// StopAll ends all animations on target.
func (an *Animator) StopAll(target object.Object) {
	an.mu.Lock()
	defer an.mu.Unlock()
	an.remove(func(r *running) bool { return r.target == target })
}

func (an *Animator) remove(match func(*running) bool) {
	keep := an.running[:0]
	for _, r := range an.running {
		if !match(r) {
			keep = append(keep, r)
		}
	}
	for i := len(keep); i < len(an.running); i++ {
		an.running[i] = nil
	}
	an.running = keep
}

// Running returns the number of running animations.
func (an *Animator) Running() int {
	an.mu.Lock()
	defer an.mu.Unlock()
	return len(an.running)
}

// Step advances all animations by dt and writes the interpolated values.
// Finished animations are removed.
func (an *Animator) Step(dt time.Duration) {
	an.mu.Lock()
	current := append([]*running(nil), an.running...)
	an.mu.Unlock()
	var finished []*running
	for _, r := range current {
		r.elapsed += dt
		v, done := r.anim.ValueAt(r.elapsed)
		r.target.SetProperty(r.anim.Property, v)
		if done {
			finished = append(finished, r)
		}
	}
	if len(finished) == 0 {
		return
	}
	an.mu.Lock()
	defer an.mu.Unlock()
	an.remove(func(r *running) bool {
		for _, f := range finished {
			if f == r {
				return true
			}
		}
		return false
	})
}
