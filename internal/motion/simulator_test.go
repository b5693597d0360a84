package motion

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const eps = 1e-9

type fakeHost struct {
	obstacle Rect
	view     Size
	reads    int
	placed   map[int]Vec
}

func newFakeHost(obstacle Rect, view Size) *fakeHost {
	return &fakeHost{obstacle: obstacle, view: view, placed: make(map[int]Vec)}
}

func (h *fakeHost) ObstacleBounds() Rect {
	h.reads++
	return h.obstacle
}

func (h *fakeHost) Viewport() Size { return h.view }

func (h *fakeHost) Place(i int, pos Vec) { h.placed[i] = pos }

// ballAt builds a default-sized ball whose center is at c.
func ballAt(c, vel Vec) Ball {
	return Ball{
		Pos:      Vec{c.X - DefaultDiameter/2, c.Y - DefaultDiameter/2},
		Vel:      vel,
		Diameter: DefaultDiameter,
		Category: "audio",
	}
}

func distToRect(c Vec, r Rect) float64 {
	return c.Dist(r.Closest(c))
}

var _ = Describe("NewBall", func() {
	It("draws each axis speed from [1,3) with a random sign", func() {
		rng := rand.New(rand.NewSource(7))
		var negX, posX, negY, posY int
		for i := 0; i < 2000; i++ {
			b := NewBall("audio", "Audio", Vec{10, 20}, DefaultDiameter, DefaultSpeed, rng)
			Expect(b.Pos).To(Equal(Vec{10, 20}))
			Expect(math.Abs(b.Vel.X)).To(And(BeNumerically(">=", 1), BeNumerically("<", 3)))
			Expect(math.Abs(b.Vel.Y)).To(And(BeNumerically(">=", 1), BeNumerically("<", 3)))
			if b.Vel.X < 0 {
				negX++
			} else {
				posX++
			}
			if b.Vel.Y < 0 {
				negY++
			} else {
				posY++
			}
		}
		Expect(negX).To(BeNumerically(">", 0))
		Expect(posX).To(BeNumerically(">", 0))
		Expect(negY).To(BeNumerically(">", 0))
		Expect(posY).To(BeNumerically(">", 0))
	})

	It("has a radius of half the diameter", func() {
		b := Ball{Diameter: DefaultDiameter}
		Expect(b.Radius()).To(Equal(50.0))
	})
})

var _ = Describe("Simulator", func() {
	var (
		view  Size
		far   Rect
		host  *fakeHost
		rng   *rand.Rand
		balls []Ball
	)

	BeforeEach(func() {
		view = Size{W: 1280, H: 720}
		far = RectFrom(5000, 5000, 10, 10)
		host = newFakeHost(far, view)
		rng = rand.New(rand.NewSource(42))
		balls = nil
		for i := 0; i < 7; i++ {
			origin := Vec{float64(100 + i*150), float64(100 + (i%3)*150)}
			balls = append(balls, NewBall("cat", "Cat", origin, DefaultDiameter, DefaultSpeed, rng))
		}
	})

	Describe("Step", func() {
		It("advances a free ball by its velocity", func() {
			sim := New(host, []Ball{ballAt(Vec{400, 300}, Vec{2, -1.5})})
			contacts := sim.Step(far, view)
			Expect(contacts[0]).To(Equal(Contact(0)))
			Expect(sim.Ball(0).Center()).To(Equal(Vec{402, 298.5}))
		})

		It("preserves speed through bounces and collisions", func() {
			obstacle := RectFrom(440, 310, 400, 100)
			sim := New(host, balls)
			before := sim.Balls()
			for frame := 0; frame < 5000; frame++ {
				sim.Step(obstacle, view)
				for i, b := range sim.Balls() {
					Expect(b.Vel.Len()).To(BeNumerically("~", before[i].Vel.Len(), 1e-6))
				}
			}
		})

		It("keeps velocity unchanged when nothing is touched", func() {
			sim := New(host, []Ball{ballAt(Vec{640, 360}, Vec{1.5, 2.5})})
			contacts := sim.Step(far, view)
			Expect(contacts[0]).To(Equal(Contact(0)))
			Expect(sim.Ball(0).Vel).To(Equal(Vec{1.5, 2.5}))
		})
	})

	Describe("viewport bounce", func() {
		It("negates vx at the left edge", func() {
			sim := New(host, []Ball{{Pos: Vec{1, 300}, Vel: Vec{-2, 0}, Diameter: DefaultDiameter}})
			contacts := sim.Step(far, view)
			Expect(contacts[0].Has(ContactWallX)).To(BeTrue())
			Expect(sim.Ball(0).Vel.X).To(Equal(2.0))
		})

		It("negates vy at the bottom edge", func() {
			sim := New(host, []Ball{{Pos: Vec{300, view.H - DefaultDiameter - 1}, Vel: Vec{0, 2}, Diameter: DefaultDiameter}})
			contacts := sim.Step(far, view)
			Expect(contacts[0].Has(ContactWallY)).To(BeTrue())
			Expect(contacts[0].Has(ContactWallX)).To(BeFalse())
			Expect(sim.Ball(0).Vel.Y).To(Equal(-2.0))
		})

		It("never ends a frame more than one step outside the viewport", func() {
			sim := New(host, balls)
			for frame := 0; frame < 10000; frame++ {
				sim.Step(far, view)
				for _, b := range sim.Balls() {
					sx, sy := math.Abs(b.Vel.X), math.Abs(b.Vel.Y)
					Expect(b.Pos.X).To(BeNumerically(">=", -sx-eps))
					Expect(b.Pos.X + b.Diameter).To(BeNumerically("<=", view.W+sx+eps))
					Expect(b.Pos.Y).To(BeNumerically(">=", -sy-eps))
					Expect(b.Pos.Y + b.Diameter).To(BeNumerically("<=", view.H+sy+eps))
				}
			}
		})

		It("walks a ball left outside the viewport back in", func() {
			sim := New(host, []Ball{{Pos: Vec{-200, 300}, Vel: Vec{2, 0}, Diameter: DefaultDiameter}})
			for frame := 0; frame < 200; frame++ {
				sim.Step(far, view)
			}
			Expect(sim.Ball(0).Pos.X).To(BeNumerically(">", 0))
			Expect(sim.Ball(0).Vel.X).To(Equal(2.0))
		})
	})

	Describe("obstacle collision", func() {
		var obstacle Rect

		BeforeEach(func() {
			obstacle = Rect{Left: 100, Top: 100, Right: 300, Bottom: 150}
		})

		It("reflects a ball overlapping the left side horizontally", func() {
			sim := New(host, []Ball{ballAt(Vec{100, 125}, Vec{5, 0})})
			contacts := sim.Step(obstacle, Size{W: 1000, H: 1000})
			b := sim.Ball(0)
			Expect(contacts[0].Has(ContactObstacle)).To(BeTrue())
			Expect(b.Vel.X).To(Equal(-5.0))
			Expect(b.Vel.Y).To(Equal(0.0))
			Expect(distToRect(b.Center(), obstacle)).To(BeNumerically(">=", 50-1e-6))
		})

		It("pushes a grazing ball out along the normal", func() {
			sim := New(host, []Ball{ballAt(Vec{50, 125}, Vec{5, 0})})
			sim.Step(obstacle, Size{W: 1000, H: 1000})
			b := sim.Ball(0)
			Expect(b.Vel).To(Equal(Vec{-5, 0}))
			Expect(b.Center().X).To(BeNumerically("~", 50, 1e-9))
			Expect(distToRect(b.Center(), obstacle)).To(BeNumerically("~", 50, 1e-9))
		})

		It("reflects off a corner along the diagonal", func() {
			sim := New(host, []Ball{ballAt(Vec{70, 70}, Vec{1, 1})})
			sim.Step(obstacle, Size{W: 1000, H: 1000})
			b := sim.Ball(0)
			Expect(b.Vel.X).To(BeNumerically("~", -1, 1e-9))
			Expect(b.Vel.Y).To(BeNumerically("~", -1, 1e-9))
			Expect(distToRect(b.Center(), obstacle)).To(BeNumerically("~", 50, 1e-9))
		})

		It("falls back to a (1,0) normal when the center is inside", func() {
			inside := Rect{Left: 100, Top: 100, Right: 300, Bottom: 300}
			sim := New(host, []Ball{ballAt(Vec{200, 200}, Vec{3, 2})})
			contacts := sim.Step(inside, Size{W: 1000, H: 1000})
			b := sim.Ball(0)
			Expect(contacts[0].Has(ContactObstacle)).To(BeTrue())
			Expect(b.Vel).To(Equal(Vec{-3, 2}))
			Expect(b.Pos.IsValid()).To(BeTrue())
			Expect(distToRect(b.Center(), inside)).To(BeNumerically(">=", 50-1e-6))
		})

		It("ignores a ball exactly one radius away", func() {
			sim := New(host, []Ball{ballAt(Vec{45, 125}, Vec{5, 0})})
			contacts := sim.Step(obstacle, Size{W: 1000, H: 1000})
			Expect(contacts[0].Has(ContactObstacle)).To(BeFalse())
			Expect(sim.Ball(0).Vel).To(Equal(Vec{5, 0}))
		})
	})

	Describe("Frame", func() {
		It("reads the obstacle every frame", func() {
			sim := New(host, balls)
			for i := 0; i < 3; i++ {
				sim.Frame()
			}
			Expect(host.reads).To(Equal(3))
		})

		It("uses the obstacle's current position", func() {
			sim := New(host, []Ball{ballAt(Vec{500, 300}, Vec{1, 0})})
			sim.Frame()
			Expect(sim.Ball(0).Vel.X).To(Equal(1.0))

			host.obstacle = RectFrom(545, 250, 100, 100)
			contacts := sim.Frame()
			Expect(contacts[0].Has(ContactObstacle)).To(BeTrue())
			Expect(sim.Ball(0).Vel.X).To(Equal(-1.0))
		})

		It("places free balls but not held ones", func() {
			sim := New(host, balls)
			sim.Press(2, sim.Ball(2).Center())
			sim.Frame()
			Expect(host.placed).To(HaveLen(len(balls) - 1))
			Expect(host.placed).NotTo(HaveKey(2))
			Expect(host.placed[0]).To(Equal(sim.Ball(0).Pos))
		})
	})

	Describe("dragging", func() {
		It("keeps a held ball still under physics", func() {
			sim := New(host, balls)
			grab := sim.Ball(0).Center()
			sim.Press(0, grab)
			start := sim.Ball(0).Pos
			for i := 0; i < 100; i++ {
				sim.Frame()
			}
			Expect(sim.Ball(0).Pos).To(Equal(start))
			Expect(sim.Dragging()).To(BeTrue())
		})

		It("follows the pointer keeping the grab offset", func() {
			sim := New(host, balls)
			b := sim.Ball(1)
			grab := b.Pos.Add(Vec{30, 20})
			sim.Press(1, grab)
			sim.Move(Vec{600, 400})
			Expect(sim.Ball(1).Pos).To(Equal(Vec{570, 380}))
			Expect(host.placed[1]).To(Equal(Vec{570, 380}))
		})

		It("only moves held balls on pointer move", func() {
			sim := New(host, balls)
			before := sim.Balls()
			sim.Press(3, before[3].Center())
			sim.Move(Vec{10, 10})
			after := sim.Balls()
			for i := range after {
				if i == 3 {
					continue
				}
				Expect(after[i].Pos).To(Equal(before[i].Pos))
			}
		})

		It("resumes with the velocity held before the drag", func() {
			sim := New(host, []Ball{ballAt(Vec{400, 300}, Vec{2, 1})})
			sim.Press(0, Vec{400, 300})
			sim.Move(Vec{700, 500})
			sim.Frame()
			sim.Release()
			Expect(sim.Ball(0).Vel).To(Equal(Vec{2, 1}))
			Expect(sim.Dragging()).To(BeFalse())

			sim.Frame()
			Expect(sim.Ball(0).Center()).To(Equal(Vec{702, 501}))
		})

		It("releases every held ball at once", func() {
			sim := New(host, balls)
			sim.Press(0, sim.Ball(0).Center())
			sim.Press(4, sim.Ball(4).Center())
			sim.Release()
			for _, b := range sim.Balls() {
				Expect(b.Dragging).To(BeFalse())
			}
		})
	})

	Describe("HitTest", func() {
		It("finds the ball under the pointer", func() {
			sim := New(host, []Ball{ballAt(Vec{100, 100}, Vec{}), ballAt(Vec{400, 100}, Vec{})})
			i, ok := sim.HitTest(Vec{420, 110})
			Expect(ok).To(BeTrue())
			Expect(i).To(Equal(1))
		})

		It("misses the corners of the bounding box", func() {
			sim := New(host, []Ball{ballAt(Vec{100, 100}, Vec{})})
			_, ok := sim.HitTest(Vec{55, 55})
			Expect(ok).To(BeFalse())
		})

		It("prefers the topmost of overlapping balls", func() {
			sim := New(host, []Ball{ballAt(Vec{100, 100}, Vec{}), ballAt(Vec{130, 100}, Vec{})})
			i, ok := sim.HitTest(Vec{115, 100})
			Expect(ok).To(BeTrue())
			Expect(i).To(Equal(1))
		})
	})
})
