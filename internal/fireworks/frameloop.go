package fireworks

// FrameDriver schedules one callback for the next displayed frame and
// reports the current time in milliseconds.
type FrameDriver interface {
	RequestFrame(callback func(timestampMs float64))
	Now() float64
}

// FrameLoop is a FrameDriver fired by its owner: the terminal program on
// every tick message, or a headless loop stepping a virtual clock.
// It holds at most one pending callback; a new request replaces the old one.
type FrameLoop struct {
	now     float64
	pending func(float64)
}

// NewFrameLoop creates a loop whose clock starts at startMs.
func NewFrameLoop(startMs float64) *FrameLoop {
	return &FrameLoop{now: startMs}
}

// RequestFrame implements FrameDriver.
func (l *FrameLoop) RequestFrame(callback func(timestampMs float64)) {
	l.pending = callback
}

// Now implements FrameDriver. It returns the last fired timestamp.
func (l *FrameLoop) Now() float64 {
	return l.now
}

// Pending reports whether a callback is waiting for the next frame.
func (l *FrameLoop) Pending() bool {
	return l.pending != nil
}

// Fire moves the clock to timestampMs and runs the pending callback, if any.
// It reports whether a callback ran.
func (l *FrameLoop) Fire(timestampMs float64) bool {
	l.now = timestampMs
	cb := l.pending
	l.pending = nil
	if cb == nil {
		return false
	}
	cb(timestampMs)
	return true
}
