package tui

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/scorering/internal/config"
	apperrors "github.com/agbru/scorering/internal/errors"
	"github.com/agbru/scorering/internal/metrics"
	"github.com/agbru/scorering/internal/presentation"
	"github.com/agbru/scorering/internal/ring"
	"github.com/agbru/scorering/internal/service"
	"github.com/agbru/scorering/internal/viewmodel"
)

func testConfig(animated bool) config.AppConfig {
	return config.AppConfig{
		Source:        config.SourceStub,
		Timeout:       time.Second,
		FPS:           30,
		CountDuration: time.Second,
		NoAnimation:   !animated,
	}
}

func newTestModel(t *testing.T, svc service.Fetcher, animated bool, opts ...Option) Model {
	t.Helper()
	m, err := NewModel(context.Background(), svc, testConfig(animated), "dev", opts...)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	t.Cleanup(m.cancel)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// fetch runs the queued fetch and applies its result.
func fetch(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.queue.Drain()
	if cmd == nil {
		t.Fatal("no fetch queued")
	}
	msg, ok := cmd().(fetchResultMsg)
	if !ok {
		t.Fatal("queued command did not produce a fetch result")
	}
	m, _ = update(t, m, msg)
	return m
}

// frames delivers n frames one interval apart starting at start.
func frames(t *testing.T, m Model, start time.Time, n int) (Model, time.Time) {
	t.Helper()
	now := start
	for i := 0; i < n; i++ {
		m, _ = update(t, m, frameMsg(now))
		now = now.Add(m.interval)
	}
	return m, now
}

func TestNewModel_StartsLoading(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)

	if m.state.Kind() != viewmodel.KindLoading {
		t.Errorf("state = %v, want loading", m.state)
	}
	if !m.view.ShowLoading || m.view.Caption != presentation.LoadingText {
		t.Errorf("view = %+v", m.view)
	}
	if !m.ring.Has(ring.KeyIndeterminate) {
		t.Error("indeterminate animation should run while loading")
	}
}

func TestModel_EndToEndLoad(t *testing.T) {
	rec := metrics.NewRecorder()
	m := newTestModel(t, service.Stub(), true, WithRecorder(rec))

	m.home.Refetch()
	m = fetch(t, m)
	if !m.view.ShowScore || m.view.Caption != "out of 700" {
		t.Fatalf("view after load = %+v", m.view)
	}

	m, _ = frames(t, m, time.Now(), 150)

	if got := m.counter.Text(); got != "578" {
		t.Errorf("numeral = %q, want 578", got)
	}
	if m.lastAction != presentation.ActionSnapLoaded.String() {
		t.Errorf("last action = %q, want snap-loaded", m.lastAction)
	}
	if !m.ring.Idle() {
		t.Errorf("ring still animating: %v", m.ring.Active())
	}
	want := 578.0 / 700.0
	if got := m.ring.Presentation().StrokeEnd; math.Abs(got-want) > 1e-9 {
		t.Errorf("stroke end = %v, want %v", got, want)
	}

	snap := rec.Snapshot()
	if snap.State != "loaded" || snap.Score == nil || *snap.Score != 578 || snap.Numeral != "578" {
		t.Errorf("recorder snapshot = %+v", snap)
	}
}

func TestModel_FailureAndRetry(t *testing.T) {
	m := newTestModel(t, service.Failing(), true)

	m.home.Refetch()
	m = fetch(t, m)
	if !m.view.ShowRetry || m.view.Caption != presentation.ErrorText {
		t.Fatalf("view after failure = %+v", m.view)
	}
	if m.view.StrokeColor != ringPalette().Alert {
		t.Errorf("stroke color = %q, want alert", m.view.StrokeColor)
	}

	m, _ = frames(t, m, time.Now(), 60)
	if !m.ring.Idle() {
		t.Fatalf("ring should settle after the failure pulse: %v", m.ring.Active())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatal("retry should queue a fetch")
	}
	if m.state.Kind() != viewmodel.KindLoading {
		t.Errorf("state after retry = %v, want loading", m.state)
	}
	if !m.ring.Has(ring.KeyIndeterminate) {
		t.Error("retry should restart the indeterminate animation")
	}
	if _, ok := cmd().(fetchResultMsg); !ok {
		t.Error("retry command should produce a fetch result")
	}
}

func TestModel_RetryIgnoredUnlessFailed(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Error("retry while loading should do nothing")
	}
	if m.state.Kind() != viewmodel.KindLoading {
		t.Errorf("state = %v", m.state)
	}
}

func TestModel_NoAnimation(t *testing.T) {
	m := newTestModel(t, service.Stub(), false)
	if !m.ring.Idle() {
		t.Fatal("nothing should animate without animation")
	}

	m.home.Refetch()
	m = fetch(t, m)
	if got := m.counter.Text(); got != "578" {
		t.Errorf("numeral = %q, want 578 immediately", got)
	}
	want := 578.0 / 700.0
	if got := m.ring.Model().StrokeEnd; math.Abs(got-want) > 1e-9 {
		t.Errorf("stroke end = %v, want %v", got, want)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.ctx.Err() == nil {
		t.Error("quitting should cancel the screen context")
	}
}

func TestModel_ContextCancelled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	m, err := NewModel(parent, service.Never(), testConfig(true), "dev")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.cancel)

	cancel()
	m, cmd := update(t, m, contextCancelledMsg{Err: context.Canceled})
	if m.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorCanceled)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("cancellation should quit")
	}
}

func TestModel_ContextCancelledByQuitIsSuccess(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)
	m.cancel()

	m, _ = update(t, m, contextCancelledMsg{Err: context.Canceled})
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d, want success", m.exitCode)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.footer.help.ShowAll {
		t.Error("? should expand help")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, now := frames(t, m, time.Now(), 3)

	view := m.View()
	for _, want := range []string{presentation.TitleText, presentation.LoadingText, "Frames:", "LOADING"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.ContainsFunc(view, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("view should draw the ring in braille")
	}

	m.home.Refetch()
	m = fetch(t, m)
	m, _ = frames(t, m, now, 150)
	view = m.View()
	for _, want := range []string{"578", "out of 700", "LOADED", "Fetched in"} {
		if !strings.Contains(view, want) {
			t.Errorf("loaded view missing %q", want)
		}
	}
}

func TestModel_StatsTick(t *testing.T) {
	m := newTestModel(t, service.Stub(), true)
	m, cmd := update(t, m, statsTickMsg(time.Now()))
	if cmd == nil {
		t.Error("stats tick should reschedule")
	}
	if m.stats.memory.HeapAlloc == 0 {
		t.Error("stats tick should sample memory")
	}
}
