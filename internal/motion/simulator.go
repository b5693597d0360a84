package motion

import "strings"

// Host is the visual side of the simulation. It is queried once per frame
// and told where each free ball ended up.
type Host interface {
	ObstacleBounds() Rect
	Viewport() Size
	Place(index int, pos Vec)
}

// Contact records what a ball touched during one step.
type Contact uint8

const (
	ContactWallX Contact = 1 << iota
	ContactWallY
	ContactObstacle
)

func (c Contact) Has(f Contact) bool { return c&f != 0 }

func (c Contact) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(ContactWallX) {
		parts = append(parts, "wall-x")
	}
	if c.Has(ContactWallY) {
		parts = append(parts, "wall-y")
	}
	if c.Has(ContactObstacle) {
		parts = append(parts, "obstacle")
	}
	return strings.Join(parts, "|")
}

// fallbackNormal is used when a ball's center sits on or inside the obstacle
// and the collision vector has no direction.
var fallbackNormal = Vec{1, 0}

type Simulator struct {
	host  Host
	balls []Ball
}

// New takes ownership of balls. The set is fixed for the simulator's lifetime.
func New(host Host, balls []Ball) *Simulator {
	owned := make([]Ball, len(balls))
	copy(owned, balls)
	return &Simulator{host: host, balls: owned}
}

func (s *Simulator) Len() int        { return len(s.balls) }
func (s *Simulator) Ball(i int) Ball { return s.balls[i] }

// Balls returns a copy of the current ball states.
func (s *Simulator) Balls() []Ball {
	out := make([]Ball, len(s.balls))
	copy(out, s.balls)
	return out
}

// Frame runs one display frame: read the obstacle and viewport from the host,
// step every free ball, then place them.
func (s *Simulator) Frame() []Contact {
	contacts := s.Step(s.host.ObstacleBounds(), s.host.Viewport())
	for i := range s.balls {
		if !s.balls[i].Dragging {
			s.host.Place(i, s.balls[i].Pos)
		}
	}
	return contacts
}

// Step advances every ball that is not being dragged by one frame.
func (s *Simulator) Step(obstacle Rect, view Size) []Contact {
	contacts := make([]Contact, len(s.balls))
	for i := range s.balls {
		b := &s.balls[i]
		if b.Dragging {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel)
		contacts[i] = bounce(b, view)
		if collide(b, obstacle) {
			contacts[i] |= ContactObstacle
		}
	}
	return contacts
}

// bounce flips an axis when the box touches or crosses a viewport edge while
// heading outward. The test uses the post-move position only, so a fast ball
// may overlap an edge for a frame before turning around.
func bounce(b *Ball, view Size) Contact {
	var c Contact
	if (b.Pos.X <= 0 && b.Vel.X < 0) || (b.Pos.X+b.Diameter >= view.W && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
		c |= ContactWallX
	}
	if (b.Pos.Y <= 0 && b.Vel.Y < 0) || (b.Pos.Y+b.Diameter >= view.H && b.Vel.Y > 0) {
		b.Vel.Y = -b.Vel.Y
		c |= ContactWallY
	}
	return c
}

// collide resolves a circle vs. rectangle overlap by elastic reflection
// v' = v - 2(v·n)n and pushes the ball clear of the rectangle.
func collide(b *Ball, r Rect) bool {
	radius := b.Radius()
	center := b.Center()
	d := center.Sub(r.Closest(center))
	dist := d.Len()
	if dist >= radius {
		return false
	}

	if dist == 0 {
		b.Vel = b.Vel.Reflect(fallbackNormal)
		b.Pos = b.Pos.Add(escape(center, r, radius))
		return true
	}

	n := d.Scale(1 / dist)
	b.Vel = b.Vel.Reflect(n)
	b.Pos = b.Pos.Add(n.Scale(radius - dist))
	return true
}

// escape is the shortest axis-aligned move that takes a center lying on or
// inside r to a full radius outside the nearest edge.
func escape(center Vec, r Rect, radius float64) Vec {
	moves := [4]Vec{
		{r.Left - radius - center.X, 0},
		{r.Right + radius - center.X, 0},
		{0, r.Top - radius - center.Y},
		{0, r.Bottom + radius - center.Y},
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Len() < best.Len() {
			best = m
		}
	}
	return best
}

// Press grabs ball i at pointer p. The grabbed point stays fixed relative to
// the pointer while dragging.
func (s *Simulator) Press(i int, p Vec) {
	b := &s.balls[i]
	b.Dragging = true
	b.Offset = p.Sub(b.Pos)
}

// Move drags every held ball to follow p and places it right away.
func (s *Simulator) Move(p Vec) {
	for i := range s.balls {
		b := &s.balls[i]
		if !b.Dragging {
			continue
		}
		b.Pos = p.Sub(b.Offset)
		s.host.Place(i, b.Pos)
	}
}

// Release ends every active drag. Velocities are left as they were before
// the drag began.
func (s *Simulator) Release() {
	for i := range s.balls {
		s.balls[i].Dragging = false
	}
}

// Dragging reports whether any ball is currently held.
func (s *Simulator) Dragging() bool {
	for _, b := range s.balls {
		if b.Dragging {
			return true
		}
	}
	return false
}

// HitTest returns the topmost ball under p. Later balls are drawn on top.
func (s *Simulator) HitTest(p Vec) (int, bool) {
	for i := len(s.balls) - 1; i >= 0; i-- {
		if s.balls[i].Hit(p) {
			return i, true
		}
	}
	return -1, false
}
