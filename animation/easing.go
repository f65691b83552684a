package animation

import "math"

// Easing maps the elapsed fraction of an animation, t ∈ [0,1], to the
// fraction of the way covered.
type Easing func(t float64) float64

// Linear covers the way at constant speed.
func Linear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and slows down towards the target.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutExpo starts very fast and slows down strongly.
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

var easings = map[string]Easing{
	"linear":      Linear,
	"ease-out":    EaseOutCubic,
	"ease-out-ex": EaseOutExpo,
}

// EasingByName looks up an easing function: "linear", "ease-out" or
// "ease-out-ex".
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}
