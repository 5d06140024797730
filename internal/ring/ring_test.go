package ring

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestStrategy_Keys(t *testing.T) {
	tests := []struct {
		s       Strategy
		key     string
		hasDesc bool
	}{
		{Indeterminate{}, "indeterminate", true},
		{Deterministic{Percentage: 0.5}, "deterministic", true},
		{Failure{}, "failure", true},
		{None{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			if got := tt.s.Key(); got != tt.key {
				t.Errorf("Key() = %q, want %q", got, tt.key)
			}
			d, ok := tt.s.Descriptor()
			if ok != tt.hasDesc {
				t.Fatalf("Descriptor() ok = %v, want %v", ok, tt.hasDesc)
			}
			if ok && d.Key != tt.key {
				t.Errorf("Descriptor().Key = %q, want %q", d.Key, tt.key)
			}
			if ok && d.RemovedOnCompletion {
				t.Error("descriptors should hold their final value on completion")
			}
		})
	}
}

func TestDescriptor_Timings(t *testing.T) {
	ind, _ := Indeterminate{}.Descriptor()
	if ind.Duration != 1.0 || len(ind.Tracks) != 2 {
		t.Fatalf("indeterminate = %+v", ind)
	}
	if tr := ind.Tracks[0]; tr.Property != PropStrokeStart || tr.Begin != 0.25 || tr.End() != 1.0 {
		t.Errorf("indeterminate strokeStart track = %+v", tr)
	}

	det, _ := Deterministic{Percentage: 0.8}.Descriptor()
	if tr := det.Tracks[0]; tr.Property != PropStrokeEnd || tr.To != 0.8 || tr.Duration != 1.0 {
		t.Errorf("deterministic track = %+v", tr)
	}

	fail, _ := Failure{}.Descriptor()
	if fail.Duration != 0.2 || fail.Tracks[1].Begin != 0.1 || fail.Tracks[0].To != 1.1 {
		t.Errorf("failure = %+v", fail)
	}
}

func TestCurve_Apply(t *testing.T) {
	for _, c := range []Curve{Linear, EaseInOut} {
		if got := c.Apply(0); got != 0 {
			t.Errorf("Apply(0) = %v, want 0", got)
		}
		if got := c.Apply(1); got != 1 {
			t.Errorf("Apply(1) = %v, want 1", got)
		}
	}
	if got := EaseInOut.Apply(0.5); !approx(got, 0.5) {
		t.Errorf("EaseInOut.Apply(0.5) = %v, want 0.5", got)
	}
	if got := EaseInOut.Apply(0.1); got >= 0.1 {
		t.Errorf("EaseInOut.Apply(0.1) = %v, should start slower than linear", got)
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut.Apply(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseInOut not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestRing_AddReplacesSameKey(t *testing.T) {
	r := New()
	r.Add(Deterministic{Percentage: 0.2})
	r.Add(Deterministic{Percentage: 0.9})
	r.Add(None{})

	if got := r.Active(); !reflect.DeepEqual(got, []string{KeyDeterministic}) {
		t.Fatalf("Active() = %v, want [deterministic]", got)
	}

	base := time.Unix(0, 0)
	r.Advance(base)
	r.Advance(base.Add(2 * time.Second))
	if got := r.Presentation().StrokeEnd; !approx(got, 0.9) {
		t.Errorf("StrokeEnd = %v, want 0.9", got)
	}
}

func TestRing_CompletionFiresOnce(t *testing.T) {
	r := New()
	var ended []string
	r.OnAnimationEnd(func(key string) { ended = append(ended, key) })

	base := time.Unix(100, 0)
	r.Add(Failure{})
	r.Advance(base)
	r.Advance(base.Add(100 * time.Millisecond))
	if len(ended) != 0 {
		t.Fatalf("ended early: %v", ended)
	}
	if r.Idle() {
		t.Error("Idle() = true while pulse is running")
	}

	r.Advance(base.Add(200 * time.Millisecond))
	r.Advance(base.Add(500 * time.Millisecond))
	if !reflect.DeepEqual(ended, []string{KeyFailure}) {
		t.Errorf("ended = %v, want [failure]", ended)
	}
	if !r.Idle() {
		t.Error("Idle() = false after pulse finished")
	}
	if !r.Has(KeyFailure) {
		t.Error("finished animation should stay attached")
	}
}

func TestRing_RemovalNeverFires(t *testing.T) {
	r := New()
	fired := 0
	r.OnAnimationEnd(func(string) { fired++ })

	base := time.Unix(0, 0)
	r.Add(Indeterminate{})
	r.Add(Failure{})
	r.Advance(base)
	r.Remove(Indeterminate{})
	r.Remove(None{})
	r.RemoveAll()
	r.Advance(base.Add(5 * time.Second))

	if fired != 0 {
		t.Errorf("completion fired %d times after removal", fired)
	}
	if len(r.Active()) != 0 {
		t.Errorf("Active() = %v, want empty", r.Active())
	}
}

func TestRing_CallbackMayReapply(t *testing.T) {
	r := New()
	cycles := 0
	r.OnAnimationEnd(func(key string) {
		cycles++
		if cycles < 3 {
			r.Add(Indeterminate{})
		}
	})

	now := time.Unix(0, 0)
	r.Add(Indeterminate{})
	for range 60 {
		r.Advance(now)
		now = now.Add(100 * time.Millisecond)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

func TestRing_IndeterminatePresentation(t *testing.T) {
	r := New()
	base := time.Unix(0, 0)
	r.Add(Indeterminate{})
	r.Advance(base)

	p := r.Presentation()
	if p.StrokeStart != 0 || p.StrokeEnd != 0 {
		t.Errorf("at start = %+v, want empty stroke", p)
	}

	r.Advance(base.Add(750 * time.Millisecond))
	p = r.Presentation()
	if !approx(p.StrokeEnd, 1) {
		t.Errorf("StrokeEnd at 0.75s = %v, want 1", p.StrokeEnd)
	}
	if p.StrokeStart <= 0 || p.StrokeStart >= 1 {
		t.Errorf("StrokeStart at 0.75s = %v, want mid-sweep", p.StrokeStart)
	}
}

func TestRing_FailurePulse(t *testing.T) {
	r := New()
	base := time.Unix(0, 0)
	r.Add(Failure{})
	r.Advance(base)
	r.Advance(base.Add(100 * time.Millisecond))
	if got := r.Presentation().Scale; !approx(got, 1.1) {
		t.Errorf("Scale at 0.1s = %v, want 1.1", got)
	}
	r.Advance(base.Add(200 * time.Millisecond))
	if got := r.Presentation().Scale; !approx(got, 1.0) {
		t.Errorf("Scale at 0.2s = %v, want 1.0", got)
	}
}

func TestRing_ModelSetters(t *testing.T) {
	r := New()
	r.SetPercentageComplete(1.7)
	r.SetStrokeColor("#FF0000")

	m := r.Model()
	if m.StrokeEnd != 1 {
		t.Errorf("StrokeEnd = %v, want clamped 1", m.StrokeEnd)
	}
	if m.Color != "#FF0000" {
		t.Errorf("Color = %q", m.Color)
	}
	if got := r.Presentation(); got != m {
		t.Errorf("Presentation() = %+v, want model %+v with no animations", got, m)
	}
}
