// Package metrics records what the score screen does as Prometheus metrics
// and keeps the latest screen snapshot for the debug endpoints. Recorder
// methods may be called from any goroutine.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/scorering/internal/sysmon"
)

const namespace = "scorering"

// Snapshot is the latest state of the score screen.
type Snapshot struct {
	State      string       `json:"state"`
	Score      *int         `json:"score,omitempty"`
	MaxScore   *int         `json:"maxScore,omitempty"`
	Numeral    string       `json:"numeral,omitempty"`
	LastAction string       `json:"lastAction,omitempty"`
	Animations []string     `json:"animations"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Memory     RuntimeStats `json:"memory"`
	System     sysmon.Stats `json:"system"`
}

// Recorder owns a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	fetches        *prometheus.CounterVec
	fetchDuration  prometheus.Histogram
	strategies     *prometheus.CounterVec
	actions        *prometheus.CounterVec
	states         *prometheus.CounterVec
	emissions      prometheus.Counter
	activeRequests prometheus.Gauge
	requests       *prometheus.CounterVec

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewRecorder creates a recorder with the Go runtime and process collectors
// registered alongside the score metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Score fetches by result.",
		}, []string{"result"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time taken by score fetches.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		strategies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ring_strategies_applied_total",
			Help:      "Ring animation strategies applied, by strategy key.",
		}, []string{"strategy"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completion_actions_total",
			Help:      "Actions taken when a ring animation finished.",
		}, []string{"action"}),
		states: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Score view model states entered.",
		}, []string{"state"}),
		emissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "animator_emissions_total",
			Help:      "Values emitted by the number animator.",
		}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_requests",
			Help:      "Debug HTTP requests in flight.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Debug HTTP requests by route and status.",
		}, []string{"route", "status"}),
		snapshot: Snapshot{State: "none", Animations: []string{}},
	}
	systemMemory := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "system_memory_used_percent",
		Help:      "System-wide physical memory in use.",
	}, sysmon.MemoryPercent)
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		systemMemory,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.fetches, r.fetchDuration, r.strategies, r.actions, r.states,
		r.emissions, r.activeRequests, r.requests,
	)
	return r
}

// Registry returns the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveFetch records one completed fetch.
func (r *Recorder) ObserveFetch(err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.fetches.WithLabelValues(result).Inc()
	r.fetchDuration.Observe(elapsed.Seconds())
}

// ObserveAction records a completion action and the strategy it applied.
// An empty strategy key means nothing was applied.
func (r *Recorder) ObserveAction(action, strategyKey string) {
	r.actions.WithLabelValues(action).Inc()
	if strategyKey != "" {
		r.strategies.WithLabelValues(strategyKey).Inc()
	}
	r.mu.Lock()
	r.snapshot.LastAction = action
	r.snapshot.UpdatedAt = time.Now()
	r.mu.Unlock()
}

// ObserveState records entry into a view model state. score and max are
// only meaningful when loaded is true.
func (r *Recorder) ObserveState(state string, loaded bool, score, max int) {
	r.states.WithLabelValues(state).Inc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot.State = state
	r.snapshot.Score, r.snapshot.MaxScore = nil, nil
	if loaded {
		r.snapshot.Score, r.snapshot.MaxScore = &score, &max
	}
	r.snapshot.UpdatedAt = time.Now()
}

// ObserveEmission records one animator value.
func (r *Recorder) ObserveEmission() { r.emissions.Inc() }

// SetFrame records what the ring and numeral show.
func (r *Recorder) SetFrame(numeral string, animations []string) {
	keys := make([]string, len(animations))
	copy(keys, animations)
	r.mu.Lock()
	r.snapshot.Numeral = numeral
	r.snapshot.Animations = keys
	r.mu.Unlock()
}

// Snapshot returns a copy of the latest screen state with fresh memory and
// system readings.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	s := r.snapshot
	s.Animations = append([]string(nil), r.snapshot.Animations...)
	r.mu.RUnlock()
	if s.Animations == nil {
		s.Animations = []string{}
	}
	s.Memory = ReadRuntime()
	s.System = sysmon.Sample()
	return s
}

// IncrementActiveRequests marks a debug request as started.
func (r *Recorder) IncrementActiveRequests() { r.activeRequests.Inc() }

// DecrementActiveRequests marks a debug request as finished.
func (r *Recorder) DecrementActiveRequests() { r.activeRequests.Dec() }

// ObserveRequest counts a finished debug request.
func (r *Recorder) ObserveRequest(route, status string) {
	r.requests.WithLabelValues(route, status).Inc()
}
