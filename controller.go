package sanctuary

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// --- Constants ---

const (
	defaultWidth        = 800
	defaultHeight       = 500
	defaultDragDeadZone = 4.0 // pixels

	// Independent PCG streams derived from the session seed.
	streamBackdrop = 0x5a4e_0001
	streamSand     = 0x5a4e_0002
	streamPlace    = 0x5a4e_0003
	streamTree     = 0x5a4e_0100
)

// Config controls a garden session. The zero value is usable.
type Config struct {
	// Width and Height are the canvas size in pixels. Zero defaults to 800x500.
	Width, Height int
	// Seed drives every procedural choice of the session. Zero picks a
	// time-derived seed.
	Seed uint64
	// DragDeadZone is how far, in pixels, a press may travel and still count
	// as a click. Zero defaults to 4.
	DragDeadZone float64
	// TwinklePeriod is the star twinkle cycle in seconds. Zero defaults to 2.4.
	TwinklePeriod float32
	// ScreenshotDir is where Screenshot writes PNG files. Empty means
	// "screenshots".
	ScreenshotDir string
	// Debug enables per-frame timing output on stderr.
	Debug bool
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	// cancelled suppresses the click on release, set when the mode changes
	// or the pointer leaves mid-press.
	cancelled bool
}

// --- Handler registry ---

// MilestoneEvent reports a newly reached constellation milestone.
type MilestoneEvent struct {
	Milestone Milestone
	StarCount int
}

type milestoneHandler struct {
	id uint32
	fn func(MilestoneEvent)
}

type handlerRegistry struct {
	milestone []milestoneHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.event == EventMilestone {
		for i := range h.reg.milestone {
			if h.reg.milestone[i].id == h.id {
				h.reg.milestone = append(h.reg.milestone[:i], h.reg.milestone[i+1:]...)
				return
			}
		}
	}
}

// Controller owns the garden session: the interaction mode, the garden
// collections, the sand raster and the composed output frame. It is not safe
// for concurrent use; drive it from a single loop.
type Controller struct {
	cfg  Config
	seed uint64
	mode Mode

	garden   GardenState
	sand     *Surface // backdrop plus every groove drawn since the last repaint
	frame    *Surface // output of the most recent Frame call
	deformer *SandDeformer
	placeRNG *rand.Rand
	twinkle  *Twinkler
	scene    *VectorScene

	pointer      pointerState
	dragDeadZone float64
	handlers     handlerRegistry
	reached      int // threshold of the highest milestone already announced

	injectQueue     []syntheticPointerEvent
	runner          *ScriptRunner
	screenshotQueue []string
	frames          uint64
}

// NewController creates a session with a freshly composed backdrop.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Width == 0 && cfg.Height == 0 {
		cfg.Width, cfg.Height = defaultWidth, defaultHeight
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("new controller: invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.DragDeadZone <= 0 {
		cfg.DragDeadZone = defaultDragDeadZone
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	c := &Controller{
		cfg:          cfg,
		seed:         seed,
		mode:         ModeSand,
		sand:         NewSurface(cfg.Width, cfg.Height),
		frame:        NewSurface(cfg.Width, cfg.Height),
		placeRNG:     rand.New(rand.NewPCG(seed, streamPlace)),
		twinkle:      NewTwinkler(cfg.TwinklePeriod),
		scene:        NewVectorScene(1024),
		dragDeadZone: cfg.DragDeadZone,
	}
	c.deformer = NewSandDeformer(c.sand, rand.New(rand.NewPCG(seed, streamSand)))
	Compose(c.sand, c.backdropRNG())
	return c, nil
}

// backdropRNG returns the generator every backdrop composition starts from,
// so a repaint reproduces the session's original backdrop exactly.
func (c *Controller) backdropRNG() *rand.Rand {
	return rand.New(rand.NewPCG(c.seed, streamBackdrop))
}

// Seed returns the session seed actually in use.
func (c *Controller) Seed() uint64 { return c.seed }

// Size returns the canvas size in pixels.
func (c *Controller) Size() (int, int) { return c.cfg.Width, c.cfg.Height }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// Sand returns the sand raster. It is live; callers must not paint on it.
func (c *Controller) Sand() *Surface { return c.sand }

// Stars returns the placed stars in insertion order.
func (c *Controller) Stars() []Star { return c.garden.Stars() }

// Stones returns the placed stones in insertion order.
func (c *Controller) Stones() []Stone { return c.garden.Stones() }

// Leaves returns the gratitude leaves in insertion order.
func (c *Controller) Leaves() []GratitudeLeaf { return c.garden.Leaves() }

// Morphology returns the tree morphology for the current leaf count.
func (c *Controller) Morphology() TreeMorphology {
	return MorphologyFor(c.garden.LeafCount())
}

// Milestone returns the currently achieved constellation milestone.
func (c *Controller) Milestone() (Milestone, bool) {
	return Achieved(c.garden.StarCount())
}

// Stroking reports whether a sand stroke is in progress.
func (c *Controller) Stroking() bool { return c.deformer.Active() }

// SetMode switches the interaction mode. An in-progress sand stroke ends and
// a pending press is cancelled, so nothing started under the old mode is
// completed under the new one.
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.deformer.End()
	if c.pointer.down {
		c.pointer.cancelled = true
	}
	c.mode = m
}

// SetDragDeadZone sets the minimum movement in pixels before a press stops
// counting as a click.
func (c *Controller) SetDragDeadZone(pixels float64) {
	c.dragDeadZone = pixels
}

// OnMilestone registers a callback fired when a star placement reaches a
// milestone that has not been announced since the last star clear.
func (c *Controller) OnMilestone(fn func(MilestoneEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.milestone = append(c.handlers.milestone, milestoneHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventMilestone}
}

// --- Coordinate mapping ---

// ClientToCanvas converts client coordinates to canvas pixels given where
// the canvas is displayed in client space. The display rect may be scaled
// relative to the canvas. ok is false for points outside the display rect.
func (c *Controller) ClientToCanvas(display Rect, cx, cy float64) (x, y float64, ok bool) {
	if display.Width <= 0 || display.Height <= 0 || !display.Contains(cx, cy) {
		return 0, 0, false
	}
	x = (cx - display.X) * float64(c.cfg.Width) / display.Width
	y = (cy - display.Y) * float64(c.cfg.Height) / display.Height
	return x, y, true
}

// toPercent converts canvas pixels to clamped percentages.
func (c *Controller) toPercent(x, y float64) (float64, float64) {
	return clampPercent(x / float64(c.cfg.Width) * 100), clampPercent(y / float64(c.cfg.Height) * 100)
}

// --- Pointer events ---

// PointerDown handles a press at canvas pixel (x, y). In sand mode it starts
// a stroke; a press while a stroke is already active is ignored.
func (c *Controller) PointerDown(x, y float64) {
	if c.pointer.down {
		return
	}
	c.pointer = pointerState{down: true, startX: x, startY: y, lastX: x, lastY: y}
	if c.mode == ModeSand {
		c.deformer.Begin(x, y)
	}
}

// PointerMove handles movement with the button held. In sand mode it paints
// the groove from the previous sample to (x, y).
func (c *Controller) PointerMove(x, y float64) {
	if !c.pointer.down {
		return
	}
	if !c.pointer.dragging {
		dx, dy := x-c.pointer.startX, y-c.pointer.startY
		if math.Sqrt(dx*dx+dy*dy) > c.dragDeadZone {
			c.pointer.dragging = true
		}
	}
	if c.mode == ModeSand && c.deformer.Active() {
		c.deformer.Extend(x, y)
	}
	c.pointer.lastX, c.pointer.lastY = x, y
}

// PointerUp handles a release at (x, y). A release that was not a drag and
// was not cancelled is a click and places a star or stone in those modes.
func (c *Controller) PointerUp(x, y float64) {
	if !c.pointer.down {
		return
	}
	ps := c.pointer
	c.pointer = pointerState{lastX: x, lastY: y}
	c.deformer.End()
	if ps.dragging || ps.cancelled {
		return
	}
	c.click(x, y)
}

// PointerLeave handles the pointer leaving the canvas: any stroke ends and
// the pending press can no longer become a click.
func (c *Controller) PointerLeave() {
	c.deformer.End()
	c.pointer = pointerState{lastX: c.pointer.lastX, lastY: c.pointer.lastY}
}

// click places an item according to the current mode. Sand mode ignores
// clicks.
func (c *Controller) click(x, y float64) {
	if !c.cfgBounds().Contains(x, y) {
		return
	}
	px, py := c.toPercent(x, y)
	switch c.mode {
	case ModeStar:
		c.PlaceStar(px, py)
	case ModeStone:
		c.PlaceStone(px, py)
	}
}

func (c *Controller) cfgBounds() Rect {
	return Rect{Width: float64(c.cfg.Width), Height: float64(c.cfg.Height)}
}

// processPointer runs the frame-polled pointer state machine: a press
// transition, a held move, or a release transition.
func (c *Controller) processPointer(x, y float64, pressed bool) {
	switch {
	case pressed && !c.pointer.down:
		c.PointerDown(x, y)
	case !pressed && c.pointer.down:
		c.PointerUp(x, y)
	case pressed && c.pointer.down:
		if x != c.pointer.lastX || y != c.pointer.lastY {
			c.PointerMove(x, y)
		}
	}
}

// ProcessPointer feeds one polled pointer sample in canvas pixels. Window
// shells call it once per tick with the current cursor state.
func (c *Controller) ProcessPointer(x, y float64, pressed bool) {
	c.processPointer(x, y, pressed)
}

// --- Placement ---

// PlaceStar appends a star with a random emotion, color and size at the
// given percentage position, regardless of mode. It returns the new star.
func (c *Controller) PlaceStar(px, py float64) Star {
	e := RandomEmotion(c.placeRNG)
	s := Star{X: px, Y: py, Emotion: e, Color: EmotionColor(e), Size: RandomStarSize(c.placeRNG)}
	c.garden.AddStar(s)
	c.twinkle.Sync(c.garden.StarCount())
	c.announceMilestone()
	return c.garden.stars[len(c.garden.stars)-1]
}

// PlaceStone appends a stone with a random size class at the given
// percentage position, regardless of mode.
func (c *Controller) PlaceStone(px, py float64) Stone {
	s := Stone{X: px, Y: py, Size: RandomStoneSize(c.placeRNG)}
	c.garden.AddStone(s)
	return c.garden.stones[len(c.garden.stones)-1]
}

// AutoPlaceStar adds a star at a random spot in the sky band
// (x in [0, 90), y in [0, 60)).
func (c *Controller) AutoPlaceStar() Star {
	return c.PlaceStar(c.placeRNG.Float64()*90, c.placeRNG.Float64()*60)
}

// AutoPlaceStone adds a stone at a random spot on the sand
// (x in [10, 90), y in [70, 95)).
func (c *Controller) AutoPlaceStone() Stone {
	return c.PlaceStone(10+c.placeRNG.Float64()*80, 70+c.placeRNG.Float64()*25)
}

func (c *Controller) announceMilestone() {
	m, ok := Achieved(c.garden.StarCount())
	if !ok || m.RequiredStars <= c.reached {
		return
	}
	c.reached = m.RequiredStars
	ev := MilestoneEvent{Milestone: m, StarCount: c.garden.StarCount()}
	// Handlers may remove themselves or others while dispatching.
	handlers := append([]milestoneHandler(nil), c.handlers.milestone...)
	for _, h := range handlers {
		h.fn(ev)
	}
}

// --- Gratitude ---

// AddLeaf logs a gratitude entry. Blank entries are rejected with
// ErrEmptyLeaf and leave the garden unchanged.
func (c *Controller) AddLeaf(text string) error {
	return c.garden.AddLeaf(text)
}

// SyncLeaves appends the entries of an append-only journal that the garden
// has not seen yet and returns how many were added. Blank entries are
// skipped.
func (c *Controller) SyncLeaves(entries []string) int {
	added := 0
	for _, e := range entries[min(len(entries), c.garden.LeafCount()):] {
		if c.garden.AddLeaf(e) == nil {
			added++
		}
	}
	return added
}

// --- Resets ---

// ClearSand repaints the backdrop over the whole sand raster, erasing every
// groove. Stars, stones and leaves are untouched.
func (c *Controller) ClearSand() {
	c.deformer.End()
	Compose(c.sand, c.backdropRNG())
}

// ClearStars removes every star and re-arms milestone announcements.
func (c *Controller) ClearStars() {
	c.garden.ClearStars()
	c.twinkle.Sync(0)
	c.reached = 0
}

// ClearStones removes every stone.
func (c *Controller) ClearStones() {
	c.garden.ClearStones()
}

// ClearAll clears stars, stones and sand. Gratitude leaves are kept.
func (c *Controller) ClearAll() {
	c.ClearStars()
	c.ClearStones()
	c.ClearSand()
}

// --- Tick ---

// Update advances one tick of dt seconds: an attached script takes its step,
// one queued synthetic pointer event is processed, and twinkles advance. It
// reports whether synthetic input was consumed, in which case real pointer
// input should be skipped for this tick.
func (c *Controller) Update(dt float32) bool {
	if c.runner != nil {
		c.runner.step(c)
	}
	injected := c.processInjectedInput()
	c.twinkle.Update(dt)
	return injected
}
