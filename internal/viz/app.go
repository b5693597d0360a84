package viz

import (
	"math/rand"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/san-kum/samsweb/internal/config"
	"github.com/san-kum/samsweb/internal/content"
	"github.com/san-kum/samsweb/internal/input"
	"github.com/san-kum/samsweb/internal/motion"
)

type page int

const (
	pageSplash page = iota
	pageDirectory
)

// FrameMsg is one tick of the frame clock.
type FrameMsg time.Time

// App is the splash screen program. It is the visual host, pointer source and
// navigation sink of the motion simulator.
type App struct {
	cfg    *config.Config
	dir    *content.Directory
	rng    *rand.Rand
	theme  Theme
	styles styles

	screen  *screen
	sim     *motion.Simulator
	tracker *input.Tracker

	page       page
	section    content.Section
	sectionErr error

	paused   bool
	ticking  bool
	showHelp bool

	frames     int
	bounces    int
	collisions int
}

var _ input.Navigator = (*App)(nil)

// NewApp builds the program. The simulator is created on the first window
// size, once there is a viewport to lay the balls out in.
func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	theme := GetTheme(cfg.Theme)
	return &App{
		cfg:    cfg,
		dir:    cfg.Directory(),
		rng:    rand.New(rand.NewSource(seed)),
		theme:  theme,
		styles: newStyles(theme),
		screen: newScreen(cfg.Cell, cfg.Title, cfg.Subtitle),
	}
}

func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	a.ticking = true
	return tea.Tick(time.Second/time.Duration(a.cfg.FPS), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// spawn creates the balls at their layout positions.
func (a *App) spawn() {
	origins := a.screen.origins(len(a.cfg.Categories), a.cfg.Diameter)
	balls := make([]motion.Ball, len(a.cfg.Categories))
	for i, cat := range a.cfg.Categories {
		balls[i] = motion.NewBall(cat.Key, cat.Title(), origins[i], a.cfg.Diameter, a.cfg.SpeedRange(), a.rng)
		a.screen.Place(i, origins[i])
	}
	a.sim = motion.New(a.screen, balls)
	a.tracker = input.NewTracker(a.sim, a, a.cfg.ClickSlop)
	glog.V(1).Infof("spawned %d balls in %.0fx%.0f px", len(balls), a.screen.Viewport().W, a.screen.Viewport().H)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.screen.resize(msg.Width, msg.Height)
		if a.sim == nil {
			a.spawn()
		}
		return a, nil
	case FrameMsg:
		return a, a.frame()
	case tea.MouseMsg:
		a.mouse(msg)
		return a, nil
	case tea.KeyMsg:
		return a, a.key(msg)
	}
	return a, nil
}

// frame runs one simulator frame and schedules the next, unless paused.
func (a *App) frame() tea.Cmd {
	if a.paused {
		a.ticking = false
		return nil
	}
	if a.sim != nil {
		for _, c := range a.sim.Frame() {
			if c.Has(motion.ContactWallX) || c.Has(motion.ContactWallY) {
				a.bounces++
			}
			if c.Has(motion.ContactObstacle) {
				a.collisions++
			}
		}
		a.frames++
	}
	return a.tick()
}

func (a *App) mouse(msg tea.MouseMsg) {
	if a.page != pageSplash || a.tracker == nil {
		return
	}
	p := a.screen.pointer(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			a.tracker.Press(p)
		}
	case tea.MouseActionMotion:
		a.tracker.Move(p)
	case tea.MouseActionRelease:
		a.tracker.Release(p)
	}
}

func (a *App) key(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	}

	if a.page == pageDirectory {
		switch msg.String() {
		case "esc", "b", "backspace", "left", "h":
			a.back()
		}
		return nil
	}

	switch msg.String() {
	case "p", " ":
		a.paused = !a.paused
		if !a.paused && !a.ticking {
			return a.tick()
		}
	case "t":
		a.theme = NextTheme(a.theme.Name)
		a.styles = newStyles(a.theme)
	case "?":
		a.showHelp = !a.showHelp
	case "esc":
		a.showHelp = false
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(a.cfg.Categories) {
			a.Navigate(a.cfg.Categories[n-1].Key)
		}
	}
	return nil
}

// Navigate opens the directory page for a category.
func (a *App) Navigate(category string) {
	if a.tracker != nil {
		a.tracker.Cancel()
	}
	a.section, a.sectionErr = a.dir.Lookup(category)
	if a.sectionErr != nil {
		glog.Warningf("navigate: %v", a.sectionErr)
	} else {
		glog.V(1).Infof("navigate %q", category)
	}
	a.page = pageDirectory
	a.showHelp = false
}

// back returns to the splash. The simulation kept running meanwhile.
func (a *App) back() {
	a.page = pageSplash
	a.section, a.sectionErr = content.Section{}, nil
}

func (a *App) View() string {
	if a.page == pageDirectory {
		return a.directoryView()
	}
	return a.splashView()
}

// Run starts the splash program on the terminal.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
