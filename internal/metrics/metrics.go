// Package metrics counts rule check outcomes with a Prometheus registry.
//
// A Collector is private to one CLI invocation; nothing is served over HTTP.
// The CLI prints a summary after `check --metrics` and `scan --metrics`.
package metrics

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/roach88/refined/internal/rules"
)

const namespace = "refined"

// Collector holds the check counters.
type Collector struct {
	registry *prometheus.Registry

	checks   *prometheus.CounterVec
	runs     prometheus.Counter
	duration prometheus.Histogram
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checks_total",
				Help:      "Field checks by field and outcome",
			},
			[]string{"field", "outcome"},
		),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed check runs",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a check run",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	c.registry.MustRegister(c.checks, c.runs, c.duration)
	return c
}

// Observe records one field check. It satisfies rules.Observer.
func (c *Collector) Observe(field string, outcome rules.Outcome) {
	c.checks.WithLabelValues(field, string(outcome)).Inc()
}

// RunDone records a completed run and its duration.
func (c *Collector) RunDone(d time.Duration) {
	c.runs.Inc()
	c.duration.Observe(d.Seconds())
}

// Count is one row of the summary.
type Count struct {
	Field   string        `json:"field"`
	Outcome rules.Outcome `json:"outcome"`
	Value   uint64        `json:"count"`
}

// Counts returns the check counters sorted by field, then outcome.
func (c *Collector) Counts() ([]Count, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	counts := []Count{}
	for _, mf := range families {
		if mf.GetName() != namespace+"_checks_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var cnt Count
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "field":
					cnt.Field = lp.GetValue()
				case "outcome":
					cnt.Outcome = rules.Outcome(lp.GetValue())
				}
			}
			cnt.Value = uint64(m.GetCounter().GetValue())
			counts = append(counts, cnt)
		}
	}

	slices.SortFunc(counts, func(a, b Count) int {
		if a.Field != b.Field {
			if a.Field < b.Field {
				return -1
			}
			return 1
		}
		if a.Outcome < b.Outcome {
			return -1
		}
		if a.Outcome > b.Outcome {
			return 1
		}
		return 0
	})
	return counts, nil
}

// Runs returns the number of completed runs.
func (c *Collector) Runs() (uint64, error) {
	var m dto.Metric
	if err := c.runs.Write(&m); err != nil {
		return 0, fmt.Errorf("read runs counter: %w", err)
	}
	return uint64(m.GetCounter().GetValue()), nil
}

// WriteSummary prints one line per field and outcome, then the run count
// once a run has completed.
func (c *Collector) WriteSummary(w io.Writer) error {
	counts, err := c.Counts()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		if _, err := fmt.Fprintln(w, "no checks recorded"); err != nil {
			return err
		}
	}
	for _, cnt := range counts {
		if _, err := fmt.Fprintf(w, "%s_checks_total{field=%q,outcome=%q} %d\n",
			namespace, cnt.Field, cnt.Outcome, cnt.Value); err != nil {
			return err
		}
	}

	runs, err := c.Runs()
	if err != nil || runs == 0 {
		return err
	}
	_, err = fmt.Fprintf(w, "%s_runs_total %d\n", namespace, runs)
	return err
}
