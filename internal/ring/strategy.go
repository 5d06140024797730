// Package ring models the animated progress ring: the closed set of
// animation strategies, their declarative descriptors, and the Ring that
// evaluates attached animations against a frame clock.
package ring

// Property names an animatable attribute of the ring's stroke.
type Property string

const (
	PropStrokeStart Property = "strokeStart"
	PropStrokeEnd   Property = "strokeEnd"
	PropScale       Property = "transform.scale"
)

// Curve is a timing function applied to a track's progress.
type Curve int

const (
	Linear Curve = iota
	EaseInOut
)

// Track animates one property from From to To. Begin and Duration are in
// seconds relative to the start of the owning descriptor.
type Track struct {
	Property Property
	From     float64
	To       float64
	Begin    float64
	Duration float64
	Curve    Curve
}

// End returns the time, relative to the descriptor start, at which the
// track reaches To.
func (t Track) End() float64 { return t.Begin + t.Duration }

// Descriptor is the declarative form of a strategy's animation.
type Descriptor struct {
	Key                 string
	Duration            float64
	RemovedOnCompletion bool
	Tracks              []Track
}

// Strategy keys.
const (
	KeyIndeterminate = "indeterminate"
	KeyDeterministic = "deterministic"
	KeyFailure       = "failure"
)

// Strategy is one of Indeterminate, Deterministic, Failure or None.
type Strategy interface {
	// Key identifies the animation slot the strategy occupies. None has the
	// empty key.
	Key() string
	// Descriptor returns the animation to attach, or false for None.
	Descriptor() (Descriptor, bool)
	// String returns a short human-readable name.
	String() string

	strategy()
}

// Indeterminate is one sweep of the looping loading animation. The
// coordinator re-applies it after each cycle while data is loading.
type Indeterminate struct{}

// Deterministic fills the stroke from empty to Percentage and holds it there.
type Deterministic struct {
	Percentage float64
}

// Failure is a short scale pulse drawing attention to an error.
type Failure struct{}

// None attaches nothing.
type None struct{}

func (Indeterminate) Key() string { return KeyIndeterminate }
func (Deterministic) Key() string { return KeyDeterministic }
func (Failure) Key() string       { return KeyFailure }
func (None) Key() string          { return "" }

func (Indeterminate) String() string   { return "indeterminate" }
func (d Deterministic) String() string { return "deterministic(" + formatPercent(d.Percentage) + ")" }
func (Failure) String() string         { return "failure" }
func (None) String() string            { return "none" }

func (Indeterminate) strategy() {}
func (Deterministic) strategy() {}
func (Failure) strategy()       {}
func (None) strategy()          {}

func (Indeterminate) Descriptor() (Descriptor, bool) {
	return Descriptor{
		Key:      KeyIndeterminate,
		Duration: 1.0,
		Tracks: []Track{
			{Property: PropStrokeStart, From: 0, To: 1, Begin: 0.25, Duration: 0.75, Curve: EaseInOut},
			{Property: PropStrokeEnd, From: 0, To: 1, Begin: 0, Duration: 0.75, Curve: EaseInOut},
		},
	}, true
}

func (d Deterministic) Descriptor() (Descriptor, bool) {
	return Descriptor{
		Key:      KeyDeterministic,
		Duration: 1.0,
		Tracks: []Track{
			{Property: PropStrokeEnd, From: 0, To: d.Percentage, Duration: 1.0, Curve: EaseInOut},
		},
	}, true
}

func (Failure) Descriptor() (Descriptor, bool) {
	return Descriptor{
		Key:      KeyFailure,
		Duration: 0.2,
		Tracks: []Track{
			{Property: PropScale, From: 1.0, To: 1.1, Begin: 0, Duration: 0.1, Curve: EaseInOut},
			{Property: PropScale, From: 1.1, To: 1.0, Begin: 0.1, Duration: 0.1, Curve: EaseInOut},
		},
	}, true
}

func (None) Descriptor() (Descriptor, bool) { return Descriptor{}, false }

func formatPercent(p float64) string {
	return fmtFloat(p*100) + "%"
}
