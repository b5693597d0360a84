package motion

import "math/rand"

// DefaultDiameter is the bounding box size of a ball in pixels.
const DefaultDiameter = 100.0

// SpeedRange bounds the initial per-axis speed in pixels per frame.
// Magnitudes are drawn from [Min, Max).
type SpeedRange struct {
	Min, Max float64
}

// DefaultSpeed matches the splash screen's original feel.
var DefaultSpeed = SpeedRange{Min: 1, Max: 3}

// Ball is a draggable, bouncing circle bound to a navigation category.
// Pos is the top-left corner of its bounding box.
type Ball struct {
	Pos      Vec
	Vel      Vec
	Diameter float64

	Dragging bool
	Offset   Vec

	Category string
	Label    string
}

// NewBall creates a ball at origin with a random initial velocity.
// Each axis gets a magnitude in speed and an independent random sign.
func NewBall(category, label string, origin Vec, diameter float64, speed SpeedRange, rng *rand.Rand) Ball {
	return Ball{
		Pos:      origin,
		Vel:      Vec{randomAxis(speed, rng), randomAxis(speed, rng)},
		Diameter: diameter,
		Category: category,
		Label:    label,
	}
}

func randomAxis(speed SpeedRange, rng *rand.Rand) float64 {
	v := speed.Min + rng.Float64()*(speed.Max-speed.Min)
	if rng.Float64() < 0.5 {
		return -v
	}
	return v
}

func (b Ball) Radius() float64 { return b.Diameter / 2 }

func (b Ball) Center() Vec {
	r := b.Radius()
	return Vec{b.Pos.X + r, b.Pos.Y + r}
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() Rect {
	return RectFrom(b.Pos.X, b.Pos.Y, b.Diameter, b.Diameter)
}

// Hit reports whether p lies on the ball's circle.
func (b Ball) Hit(p Vec) bool {
	return p.Dist(b.Center()) <= b.Radius()
}
