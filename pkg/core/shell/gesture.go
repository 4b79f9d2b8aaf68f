package shell

import (
	"sync"
	"time"
)

// DefaultGestureWindow is how long the detector waits for a second tap.
const DefaultGestureWindow = 300 * time.Millisecond

// GestureDetector distinguishes a single tap from a double action on the logo
// control. It is a two-state machine (idle, awaiting second tap) driven by an
// explicit timer/cancel pair: the first tap arms the timer, a second tap
// inside the window cancels it and fires the double action, otherwise the
// timer fires the single action.
type GestureDetector struct {
	Window   time.Duration
	OnSingle func()
	OnDouble func()

	mu       sync.Mutex
	awaiting bool
	timer    *time.Timer
}

// NewGestureDetector builds a detector with the default window.
func NewGestureDetector(onSingle, onDouble func()) *GestureDetector {
	return &GestureDetector{
		Window:   DefaultGestureWindow,
		OnSingle: onSingle,
		OnDouble: onDouble,
	}
}

// Tap feeds one pointer-down event into the machine.
func (d *GestureDetector) Tap() {
	d.mu.Lock()

	if d.awaiting {
		// Second tap inside the window: this is the double action.
		d.awaiting = false
		if d.timer != nil {
			d.timer.Stop()
			d.timer = nil
		}
		onDouble := d.OnDouble
		d.mu.Unlock()
		if onDouble != nil {
			onDouble()
		}
		return
	}

	window := d.Window
	if window <= 0 {
		window = DefaultGestureWindow
	}
	d.awaiting = true
	d.timer = time.AfterFunc(window, d.expire)
	d.mu.Unlock()
}

// Cancel disarms a pending single action, e.g. when the control unmounts.
func (d *GestureDetector) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.awaiting = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *GestureDetector) expire() {
	d.mu.Lock()
	if !d.awaiting {
		d.mu.Unlock()
		return
	}
	d.awaiting = false
	d.timer = nil
	onSingle := d.OnSingle
	d.mu.Unlock()

	if onSingle != nil {
		onSingle()
	}
}
