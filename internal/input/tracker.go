// Package input turns raw pointer events into drags and clicks on the splash
// screen's balls.
package input

import (
	"github.com/golang/glog"

	"github.com/san-kum/samsweb/internal/motion"
)

// Navigator opens the content for a category key.
type Navigator interface {
	Navigate(category string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(category string)

func (f NavigatorFunc) Navigate(category string) { f(category) }

// Tracker serialises one pointer's gestures onto a simulator. A press that
// ends without travelling further than slop is a click and opens the pressed
// ball's category; anything longer is a drag.
type Tracker struct {
	sim  *motion.Simulator
	nav  Navigator
	slop float64

	pressed  bool
	target   int
	origin   motion.Vec
	dragging bool
}

func NewTracker(sim *motion.Simulator, nav Navigator, slop float64) *Tracker {
	return &Tracker{sim: sim, nav: nav, slop: slop, target: -1}
}

// Press grabs the ball under p, if any.
func (t *Tracker) Press(p motion.Vec) bool {
	i, ok := t.sim.HitTest(p)
	if !ok {
		t.pressed, t.target = false, -1
		return false
	}
	t.sim.Press(i, p)
	t.pressed, t.target, t.origin, t.dragging = true, i, p, false
	if glog.V(2) {
		glog.Infof("press %q at (%.0f,%.0f)", t.sim.Ball(i).Category, p.X, p.Y)
	}
	return true
}

// Move drags every held ball. Moving past slop turns the gesture into a drag.
func (t *Tracker) Move(p motion.Vec) {
	t.sim.Move(p)
	if t.pressed && !t.dragging && p.Dist(t.origin) > t.slop {
		t.dragging = true
		glog.V(2).Infof("drag %q", t.sim.Ball(t.target).Category)
	}
}

// Release ends all drags. It reports the category navigated to when the
// gesture was a click on a ball.
func (t *Tracker) Release(p motion.Vec) (string, bool) {
	t.sim.Release()
	pressed, target, dragging := t.pressed, t.target, t.dragging
	t.pressed, t.target, t.dragging = false, -1, false

	if !pressed || dragging {
		return "", false
	}
	if !t.sim.Ball(target).Hit(p) {
		return "", false
	}
	category := t.sim.Ball(target).Category
	glog.V(1).Infof("click %q", category)
	t.nav.Navigate(category)
	return category, true
}

// Cancel ends the gesture and all drags without navigating.
func (t *Tracker) Cancel() {
	t.sim.Release()
	t.pressed, t.target, t.dragging = false, -1, false
}

// Dragging reports whether the current gesture has become a drag.
func (t *Tracker) Dragging() bool { return t.pressed && t.dragging }
