// Package ticker defines the periodic frame signal that drives value
// animations, together with the implementations used by the terminal loop,
// the headless loop and tests.
package ticker

import (
	"sync"
	"time"
)

// Tick carries the timestamps of one frame, in seconds. Target is when the
// next frame is due and Current is when this one fired, so
// 1/(Target-Current) is the frame rate.
type Tick struct {
	Target  float64
	Current float64
}

// Interval returns the frame interval in seconds.
func (t Tick) Interval() float64 { return t.Target - t.Current }

// Callback receives one Tick per frame.
type Callback func(Tick)

// Ticker is a source of frame ticks. Start replaces any existing
// subscription; Stop halts future invocations and is a no-op when already
// stopped.
type Ticker interface {
	Start(cb Callback)
	Stop()
}

// elapsed converts t to seconds since origin. Small magnitudes keep the
// Target-Current difference precise.
func elapsed(origin, t time.Time) float64 {
	return t.Sub(origin).Seconds()
}

// Manual is a ticker fired explicitly by the caller. Every tick carries the
// same timestamps, one interval apart, so frame arithmetic is deterministic.
type Manual struct {
	interval float64
	cb       Callback
}

// NewManual creates a manual ticker reporting the given frame rate.
func NewManual(fps float64) *Manual {
	return &Manual{interval: 1 / fps}
}

// Start installs cb as the only subscriber.
func (m *Manual) Start(cb Callback) { m.cb = cb }

// Stop removes the subscriber.
func (m *Manual) Stop() { m.cb = nil }

// Active reports whether a subscriber is installed.
func (m *Manual) Active() bool { return m.cb != nil }

// Fire delivers one tick and reports whether a subscriber received it.
func (m *Manual) Fire() bool {
	if m.cb == nil {
		return false
	}
	m.cb(Tick{Current: 0, Target: m.interval})
	return true
}

// FireAll fires until the subscriber stops, returning the number of ticks
// delivered. limit bounds the loop for subscribers that never stop.
func (m *Manual) FireAll(limit int) int {
	n := 0
	for n < limit && m.Fire() {
		n++
	}
	return n
}

// Driven is a ticker whose frames come from a host event loop, such as a
// bubbletea frame message. The callback runs on whichever goroutine calls
// Deliver, so a host that owns its state never sees a concurrent callback.
type Driven struct {
	interval time.Duration
	origin   time.Time
	cb       Callback
}

// NewDriven creates a ticker for a host loop that schedules frames every
// interval.
func NewDriven(interval time.Duration) *Driven {
	return &Driven{interval: interval}
}

// Start installs cb as the only subscriber.
func (d *Driven) Start(cb Callback) {
	d.cb = cb
	d.origin = time.Time{}
}

// Stop removes the subscriber.
func (d *Driven) Stop() { d.cb = nil }

// Active reports whether a subscriber is installed.
func (d *Driven) Active() bool { return d.cb != nil }

// Interval returns the configured frame interval.
func (d *Driven) Interval() time.Duration { return d.interval }

// Deliver forwards one frame observed at now and reports whether a
// subscriber received it.
func (d *Driven) Deliver(now time.Time) bool {
	if d.cb == nil {
		return false
	}
	if d.origin.IsZero() {
		d.origin = now
	}
	current := elapsed(d.origin, now)
	d.cb(Tick{Current: current, Target: current + d.interval.Seconds()})
	return true
}

// Periodic is a wall-clock ticker backed by time.Ticker. Ticks are handed to
// post, which must run the given function on the goroutine that owns the
// subscriber's state. Ticks already in flight when Stop is called are
// dropped.
type Periodic struct {
	interval time.Duration
	post     func(func())

	mu         sync.Mutex
	generation uint64
	cb         Callback
	stop       chan struct{}
}

// NewPeriodic creates a wall-clock ticker. A nil post runs callbacks on the
// ticker goroutine.
func NewPeriodic(interval time.Duration, post func(func())) *Periodic {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Periodic{interval: interval, post: post}
}

// Start installs cb and begins ticking, replacing any previous subscription.
func (p *Periodic) Start(cb Callback) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.generation++
	p.cb = cb
	p.stop = make(chan struct{})
	go p.run(p.generation, time.Now(), p.stop)
}

// Stop halts ticking. Calling it on a stopped ticker does nothing.
func (p *Periodic) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Periodic) stopLocked() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
	p.cb = nil
	p.generation++
}

func (p *Periodic) run(gen uint64, origin time.Time, stop <-chan struct{}) {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			current := elapsed(origin, now)
			tick := Tick{Current: current, Target: current + p.interval.Seconds()}
			p.post(func() { p.deliver(gen, tick) })
		}
	}
}

func (p *Periodic) deliver(gen uint64, tick Tick) {
	p.mu.Lock()
	cb := p.cb
	live := gen == p.generation
	p.mu.Unlock()
	if live && cb != nil {
		cb(tick)
	}
}
