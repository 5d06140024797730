package ring

import "time"

// Model is the ring's stroke state without animations applied.
type Model struct {
	StrokeStart float64
	StrokeEnd   float64
	Scale       float64
	Color       string
}

// DefaultModel is a full white ring at its natural size.
var DefaultModel = Model{StrokeStart: 0, StrokeEnd: 1, Scale: 1, Color: "#FFFFFF"}

type attachment struct {
	desc     Descriptor
	begin    time.Time
	finished bool
}

// Ring holds the stroke model and the animations currently attached to it,
// at most one per strategy key. It keeps no record of which strategy should
// come next. It is not safe for concurrent use.
type Ring struct {
	model  Model
	active map[string]*attachment
	order  []string
	now    time.Time
	onEnd  func(key string)
}

// New creates a ring with DefaultModel and no animations.
func New() *Ring {
	return &Ring{
		model:  DefaultModel,
		active: make(map[string]*attachment),
	}
}

// OnAnimationEnd registers fn to be called once for each animation that
// finishes naturally. Animations removed before finishing never report.
func (r *Ring) OnAnimationEnd(fn func(key string)) {
	r.onEnd = fn
}

// Add attaches the strategy's animation, replacing any animation under the
// same key. The animation's clock starts at the next Advance. None is a
// no-op.
func (r *Ring) Add(s Strategy) {
	desc, ok := s.Descriptor()
	if !ok {
		return
	}
	if _, exists := r.active[desc.Key]; !exists {
		r.order = append(r.order, desc.Key)
	}
	r.active[desc.Key] = &attachment{desc: desc}
}

// Remove detaches the animation under the strategy's key, if any.
func (r *Ring) Remove(s Strategy) {
	key := s.Key()
	if key == "" {
		return
	}
	r.detach(key)
}

// RemoveAll detaches every animation.
func (r *Ring) RemoveAll() {
	clear(r.active)
	r.order = r.order[:0]
}

func (r *Ring) detach(key string) {
	if _, ok := r.active[key]; !ok {
		return
	}
	delete(r.active, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SetPercentageComplete sets the stroke end immediately.
func (r *Ring) SetPercentageComplete(p float64) {
	r.model.StrokeEnd = clamp01(p)
}

// SetStrokeColor sets the stroke color.
func (r *Ring) SetStrokeColor(color string) {
	r.model.Color = color
}

// Model returns the stroke state without animations.
func (r *Ring) Model() Model { return r.model }

// Active returns the keys of the attached animations in attach order.
func (r *Ring) Active() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether an animation is attached under key.
func (r *Ring) Has(key string) bool {
	_, ok := r.active[key]
	return ok
}

// Idle reports whether no attached animation is still running.
func (r *Ring) Idle() bool {
	for _, a := range r.active {
		if !a.finished {
			return false
		}
	}
	return true
}

// Advance moves the ring's clock to now and reports each animation that has
// run its full duration. Completion callbacks run after evaluation, so they
// may add or remove animations freely.
func (r *Ring) Advance(now time.Time) {
	r.now = now

	var ended []*attachment
	for _, key := range r.order {
		a := r.active[key]
		if a.finished {
			continue
		}
		if a.begin.IsZero() {
			a.begin = now
		}
		if now.Sub(a.begin).Seconds() >= a.desc.Duration {
			a.finished = true
			ended = append(ended, a)
		}
	}

	for _, a := range ended {
		if a.desc.RemovedOnCompletion {
			r.detach(a.desc.Key)
		}
	}
	for _, a := range ended {
		// An earlier callback may have replaced or removed this one.
		if !a.desc.RemovedOnCompletion && r.active[a.desc.Key] != a {
			continue
		}
		if r.onEnd != nil {
			r.onEnd(a.desc.Key)
		}
	}
}

// Presentation returns the stroke state with attached animations applied
// at the time of the last Advance. Animations not yet advanced show their
// first frame.
func (r *Ring) Presentation() Model {
	out := r.model
	for _, key := range r.order {
		a := r.active[key]
		var elapsed float64
		switch {
		case a.finished:
			elapsed = a.desc.Duration
		case !a.begin.IsZero():
			elapsed = r.now.Sub(a.begin).Seconds()
		}
		applyTracks(&out, a.desc.Tracks, elapsed)
	}
	return out
}

// applyTracks overwrites each property with the latest track that has
// begun by elapsed. A track holds its final value once it ends.
func applyTracks(m *Model, tracks []Track, elapsed float64) {
	for _, t := range tracks {
		if elapsed < t.Begin {
			continue
		}
		progress := 1.0
		if t.Duration > 0 {
			progress = (elapsed - t.Begin) / t.Duration
		}
		v := t.From + (t.To-t.From)*t.Curve.Apply(progress)
		switch t.Property {
		case PropStrokeStart:
			m.StrokeStart = v
		case PropStrokeEnd:
			m.StrokeEnd = v
		case PropScale:
			m.Scale = v
		}
	}
}
