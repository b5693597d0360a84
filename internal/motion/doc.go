// Package motion implements the splash screen's bounce and drag simulation.
//
// A [Simulator] owns a fixed set of [Ball] values and advances them once per
// display frame:
//
//   - integrate position by velocity (pixels per frame)
//   - bounce off the viewport edges
//   - reflect off the single [Rect] obstacle (circle vs. axis-aligned box)
//   - place every free ball on the [Host]
//
// Balls that are held by the pointer ([Simulator.Press]) skip the physics and
// follow the pointer instead ([Simulator.Move]) until [Simulator.Release].
//
// The package has no error paths: every operation is a total function over
// in-memory numeric state. Collaborators are passed at construction.
package motion
