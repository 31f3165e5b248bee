package gesture

// Gesture is evaluated once per processed frame. points is nil when no hand
// was selected in the frame.
type Gesture interface {
	Update(points []Point)
	// Reset returns the gesture to its idle state, firing release callbacks
	// of held binary gestures.
	Reset()
}

// Continuous invokes OnValue every time Value yields a value.
type Continuous struct {
	Value   ValueFunc
	OnValue func(value float64)
}

// Update implements Gesture.
func (c *Continuous) Update(points []Point) {
	if points == nil {
		return
	}
	if v, ok := c.Value(points); ok && c.OnValue != nil {
		c.OnValue(v)
	}
}

// Reset implements Gesture.
func (c *Continuous) Reset() {}

// Binary fires OnTrigger when the pose appears and OnRelease when it goes
// away. A missing hand counts as the pose going away.
type Binary struct {
	Detect    DetectFunc
	OnTrigger func()
	OnRelease func()

	held bool
}

// Update implements Gesture.
func (b *Binary) Update(points []Point) {
	present := points != nil && b.Detect(points)

	switch {
	case present && !b.held:
		b.held = true
		if b.OnTrigger != nil {
			b.OnTrigger()
		}
	case !present && b.held:
		b.release()
	}
}

// Held reports whether the pose is currently present.
func (b *Binary) Held() bool { return b.held }

// Reset implements Gesture.
func (b *Binary) Reset() {
	if b.held {
		b.release()
	}
}

func (b *Binary) release() {
	b.held = false
	if b.OnRelease != nil {
		b.OnRelease()
	}
}

// Collection evaluates an ordered set of gestures against the same hand.
// It is not safe for concurrent use; the engine owns a collection from a
// single goroutine.
type Collection struct {
	gestures []Gesture
}

// NewCollection returns a collection evaluating gestures in order.
func NewCollection(gestures ...Gesture) *Collection {
	return &Collection{gestures: gestures}
}

// Len returns the number of gestures in the collection.
func (c *Collection) Len() int { return len(c.gestures) }

// Update runs every gesture against points.
func (c *Collection) Update(points []Point) {
	for _, g := range c.gestures {
		g.Update(points)
	}
}

// Reset resets every gesture.
func (c *Collection) Reset() {
	for _, g := range c.gestures {
		g.Reset()
	}
}
