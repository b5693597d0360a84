// Package trace runs the splash simulation headless and summarises what the
// balls did.
package trace

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/samsweb/internal/config"
	"github.com/san-kum/samsweb/internal/motion"
)

var (
	ErrNoFrames      = errors.New("trace: frames must be positive")
	ErrEmptyViewport = errors.New("trace: viewport must be larger than a ball")
	ErrNoBall        = errors.New("trace: ball index out of range")
)

// DefaultObstacle matches the footprint of the centred title on a desktop
// browser.
var DefaultObstacle = motion.Size{W: 400, H: 100}

// Box is a fixed-size host that records placements.
type Box struct {
	view     motion.Size
	obstacle motion.Rect
	Placed   []motion.Vec
}

// NewBox centres an obstacle of the given size in view.
func NewBox(view, obstacle motion.Size) *Box {
	return &Box{
		view:     view,
		obstacle: motion.RectFrom((view.W-obstacle.W)/2, (view.H-obstacle.H)/2, obstacle.W, obstacle.H),
	}
}

func (b *Box) ObstacleBounds() motion.Rect { return b.obstacle }
func (b *Box) Viewport() motion.Size       { return b.view }

func (b *Box) Place(i int, pos motion.Vec) {
	for len(b.Placed) <= i {
		b.Placed = append(b.Placed, motion.Vec{})
	}
	b.Placed[i] = pos
}

// Sample is one ball's state at the end of a frame.
type Sample struct {
	Center  motion.Vec
	Speed   float64
	Contact motion.Contact
}

type Options struct {
	Frames   int
	View     motion.Size
	Obstacle motion.Size
}

type Trace struct {
	Labels  []string
	Samples [][]Sample // [ball][frame]

	Bounces    int
	Collisions int
	// MaxDrift is the largest relative change of any ball's speed.
	MaxDrift float64
	// Outside counts samples whose box ended a frame more than one step past
	// a viewport edge.
	Outside int
	Elapsed time.Duration
}

// Run simulates opts.Frames frames of the configured balls.
func Run(cfg *config.Config, opts Options) (*Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNoFrames, opts.Frames)
	}
	if opts.View.W <= cfg.Diameter || opts.View.H <= cfg.Diameter {
		return nil, fmt.Errorf("%w: %vx%v", ErrEmptyViewport, opts.View.W, opts.View.H)
	}
	if opts.Obstacle == (motion.Size{}) {
		opts.Obstacle = DefaultObstacle
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	host := NewBox(opts.View, opts.Obstacle)
	origins := motion.Ring(opts.View, len(cfg.Categories), cfg.Diameter)
	balls := make([]motion.Ball, len(cfg.Categories))
	tr := &Trace{
		Labels:  make([]string, len(cfg.Categories)),
		Samples: make([][]Sample, len(cfg.Categories)),
	}
	for i, cat := range cfg.Categories {
		balls[i] = motion.NewBall(cat.Key, cat.Title(), origins[i], cfg.Diameter, cfg.SpeedRange(), rng)
		tr.Labels[i] = cat.Title()
		tr.Samples[i] = make([]Sample, 0, opts.Frames)
	}

	sim := motion.New(host, balls)
	initial := make([]float64, len(balls))
	for i, b := range balls {
		initial[i] = b.Vel.Len()
	}

	start := time.Now()
	for f := 0; f < opts.Frames; f++ {
		contacts := sim.Frame()
		for i := range balls {
			b := sim.Ball(i)
			c := contacts[i]
			if c.Has(motion.ContactWallX) || c.Has(motion.ContactWallY) {
				tr.Bounces++
			}
			if c.Has(motion.ContactObstacle) {
				tr.Collisions++
			}
			speed := b.Vel.Len()
			tr.MaxDrift = math.Max(tr.MaxDrift, math.Abs(speed-initial[i])/initial[i])
			if outside(b, opts.View) {
				tr.Outside++
			}
			tr.Samples[i] = append(tr.Samples[i], Sample{Center: b.Center(), Speed: speed, Contact: c})
		}
	}
	tr.Elapsed = time.Since(start)
	return tr, nil
}

// outside reports whether a ball's box left the viewport by more than one
// frame's travel, which the edge bounce allows.
func outside(b motion.Ball, view motion.Size) bool {
	const eps = 1e-9
	sx, sy := math.Abs(b.Vel.X)+eps, math.Abs(b.Vel.Y)+eps
	allowed := motion.Rect{Left: -sx, Top: -sy, Right: view.W + sx, Bottom: view.H + sy}
	box := b.Bounds()
	return !allowed.Contains(motion.Vec{X: box.Left, Y: box.Top}) ||
		!allowed.Contains(motion.Vec{X: box.Right, Y: box.Bottom})
}

func (t *Trace) Frames() int {
	if len(t.Samples) == 0 {
		return 0
	}
	return len(t.Samples[0])
}

// Contacts counts the frames in which ball i touched something.
func (t *Trace) Contacts(i int) (walls, obstacle int) {
	for _, s := range t.Samples[i] {
		if s.Contact.Has(motion.ContactWallX) || s.Contact.Has(motion.ContactWallY) {
			walls++
		}
		if s.Contact.Has(motion.ContactObstacle) {
			obstacle++
		}
	}
	return walls, obstacle
}
