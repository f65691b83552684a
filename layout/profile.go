package layout

import "math"

// Constants are the tunable constants of the curve.
type Constants struct {
	// MinHeight is the height of the flat baseline at rest.
	MinHeight float64
	// MaxCurveHeight caps the visible pull of the curve. Values much larger
	// than the default produce extrusion artifacts.
	MaxCurveHeight float64
	// Damping is the fraction of the raw drag which turns into curve height.
	Damping float64
}

// DefaultConstants returns the constants the curve is tuned for.
func DefaultConstants() Constants {
	return Constants{
		MinHeight:      200.0,
		MaxCurveHeight: 150.0,
		Damping:        0.6,
	}
}

// Gesture is the state of the pointer gesture as last reported by the host.
// DragDeltaY is the vertical translation since the gesture began; positive
// values are downward drags.
type Gesture struct {
	Active     bool
	PointerX   float64
	DragDeltaY float64
}

// Profile describes the shape of the curve for one frame.
type Profile struct {
	BaseHeight  float64
	CurveHeight float64
	LocationX   float64
}

// ProfileFor derives the curve profile from a gesture.
//
// Only downward drags have an effect. The curve height is the damped drag,
// capped at MaxCurveHeight, while the baseline rises by the undamped
// remainder. The peak therefore follows the pointer and the surrounding
// baseline moves with it.
func ProfileFor(g Gesture, c Constants) Profile {
	additionalHeight := math.Max(g.DragDeltaY, 0)
	waveHeight := math.Min(additionalHeight*c.Damping, c.MaxCurveHeight)
	baseHeight := c.MinHeight + additionalHeight - waveHeight
	return Profile{
		BaseHeight:  baseHeight,
		CurveHeight: waveHeight,
		LocationX:   g.PointerX,
	}
}

// RestProfile is the flat profile the curve returns to after a gesture ends.
// locationX is held at its last value.
func RestProfile(locationX float64, c Constants) Profile {
	return Profile{
		BaseHeight:  c.MinHeight,
		CurveHeight: 0,
		LocationX:   locationX,
	}
}

// Peak is the y-coordinate of the curve's lowest point on screen.
func (p Profile) Peak() float64 {
	return p.BaseHeight + p.CurveHeight
}
