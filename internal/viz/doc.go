// Package viz runs the splash screen in the terminal.
//
// The package implements a Bubble Tea program that hosts the motion
// simulator:
//
//   - [App]: frame clock, pointer input and navigation between the splash
//     and the category directory pages
//   - [Canvas]: Braille-based pixel canvas the balls are drawn on
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	click - Open the ball's category
//	drag  - Pick up and move a ball
//	1-9   - Open a category by number
//	P     - Pause/Resume the animation
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc   - Back to the splash from a directory page
package viz
