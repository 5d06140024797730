package tui

import "time"

var pacingBars = []rune("▁▂▃▄▅▆▇█")

// frameWindow keeps the most recent frame intervals, oldest first.
type frameWindow struct {
	size      int
	intervals []time.Duration
}

func newFrameWindow(size int) *frameWindow {
	return &frameWindow{size: max(size, 1)}
}

func (w *frameWindow) add(d time.Duration) {
	if len(w.intervals) == w.size {
		copy(w.intervals, w.intervals[1:])
		w.intervals = w.intervals[:w.size-1]
	}
	w.intervals = append(w.intervals, d)
}

// mean is zero for an empty window.
func (w *frameWindow) mean() time.Duration {
	if len(w.intervals) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range w.intervals {
		sum += d
	}
	return sum / time.Duration(len(w.intervals))
}

// strip draws one bar per interval. A frame that took twice the target or
// longer is a full block; a frame on time is half height.
func (w *frameWindow) strip(target time.Duration) string {
	if len(w.intervals) == 0 || target <= 0 {
		return ""
	}
	top := len(pacingBars) - 1
	out := make([]rune, len(w.intervals))
	for i, d := range w.intervals {
		level := int(float64(d) / float64(2*target) * float64(top))
		out[i] = pacingBars[max(0, min(level, top))]
	}
	return string(out)
}
