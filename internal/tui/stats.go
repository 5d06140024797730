package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scorering/internal/metrics"
	"github.com/agbru/scorering/internal/sysmon"
)

const frameHistorySize = 48

// StatsModel shows frame pacing, the attached ring animations, the last
// completion action, runtime memory and system load.
type StatsModel struct {
	frames     *frameWindow
	target     time.Duration
	lastFrame  time.Time
	animations []string
	lastAction string
	memory     metrics.RuntimeStats
	system     sysmon.Stats
	width      int
}

// NewStatsModel creates a stats panel for frames scheduled every target.
func NewStatsModel(target time.Duration) StatsModel {
	return StatsModel{
		frames: newFrameWindow(frameHistorySize),
		target: target,
	}
}

// SetWidth updates the available width.
func (s *StatsModel) SetWidth(w int) {
	s.width = w
}

// ObserveFrame records the interval since the previous frame.
func (s *StatsModel) ObserveFrame(now time.Time) {
	if !s.lastFrame.IsZero() && now.After(s.lastFrame) {
		s.frames.add(now.Sub(s.lastFrame))
	}
	s.lastFrame = now
}

// SetAnimations records the attached animation keys.
func (s *StatsModel) SetAnimations(keys []string) {
	s.animations = keys
}

// SetLastAction records the most recent completion action.
func (s *StatsModel) SetLastAction(action string) {
	s.lastAction = action
}

// UpdateMemory stores a memory reading.
func (s *StatsModel) UpdateMemory(m metrics.RuntimeStats) {
	s.memory = m
}

// UpdateSystem stores a system-wide reading.
func (s *StatsModel) UpdateSystem(st sysmon.Stats) {
	s.system = st
}

// FPS returns the measured frame rate, or 0 before two frames.
func (s StatsModel) FPS() float64 {
	mean := s.frames.mean()
	if mean <= 0 {
		return 0
	}
	return float64(time.Second) / float64(mean)
}

// View renders the stats panel.
func (s StatsModel) View() string {
	colWidth := max((s.width-6)/2, 0)

	animations := "none"
	if len(s.animations) > 0 {
		animations = strings.Join(s.animations, ", ")
	}
	lastAction := s.lastAction
	if lastAction == "" {
		lastAction = "-"
	}

	spark := s.frames.strip(s.target)
	top := fmt.Sprintf("  %s %s %s",
		metricLabelStyle.Render("Frames:"),
		metricValueStyle.Render(fmt.Sprintf("%.0f fps", s.FPS())),
		pacingStyle.Render(spark))

	rows := []string{
		top,
		formatMetricCol("Animations:", animations, colWidth) + formatMetricCol("Heap:", formatBytes(s.memory.HeapAlloc), colWidth),
		formatMetricCol("Last action:", lastAction, colWidth) + formatMetricCol("Goroutines:", fmt.Sprintf("%d", s.memory.NumGoroutine), colWidth),
		formatMetricCol("System CPU:", fmt.Sprintf("%.0f%%", s.system.CPUPercent), colWidth) + formatMetricCol("System RAM:", fmt.Sprintf("%.0f%%", s.system.MemPercent), colWidth),
	}

	return panelStyle.
		Width(max(s.width-2, 0)).
		Render(strings.Join(rows, "\n"))
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
