package sanctuary

// syntheticPointerEvent represents a single injected pointer event in canvas
// pixels, fed through the same state machine as real pointer input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	leave   bool
}

// InjectPress queues a pointer press at the given canvas coordinates. The
// event is consumed on the next Update.
func (c *Controller) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *Controller) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given canvas coordinates.
func (c *Controller) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues the pointer leaving the canvas.
func (c *Controller) InjectLeave() {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (c *Controller) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY), followed by a move and release at (toX, toY). The sequence
// consumes frames+1 ticks. Minimum frames is 2.
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	// The final move paints the last segment before the stroke ends.
	c.InjectMove(toX, toY)
	c.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (c *Controller) Pending() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (c *Controller) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if evt.leave {
		c.PointerLeave()
		return true
	}
	c.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
