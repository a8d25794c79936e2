package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"krishisahay/internal/models"
)

// Results for krishisahay_history_writes_total.
const (
	WriteOK     = "ok"
	WriteFailed = "failed"
)

var (
	queriesDesc = prometheus.NewDesc(
		"krishisahay_queries_total",
		"Total answered queries by category and intent",
		[]string{"category", "intent"},
		nil,
	)

	historyWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "krishisahay_history_writes_total",
		Help: "History record writes by result",
	}, []string{"result"})

	historyDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "krishisahay_history_dropped_total",
		Help: "History records dropped because the queue was full",
	})
)

// StatsSource supplies aggregated query counts.
type StatsSource interface {
	GetQueryStats(ctx context.Context) ([]models.QueryStat, error)
}

// QueryCollector is a custom Prometheus collector that reads query counts
// from the history table on each scrape.
type QueryCollector struct {
	src     StatsSource
	timeout time.Duration
}

// NewQueryCollector creates a collector over src.
func NewQueryCollector(src StatsSource) *QueryCollector {
	return &QueryCollector{src: src, timeout: 5 * time.Second}
}

// Describe sends the metric descriptor to the channel.
func (c *QueryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queriesDesc
}

// Collect queries the database for per-category, per-intent counts.
func (c *QueryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stats, err := c.src.GetQueryStats(ctx)
	if err != nil {
		slog.Error("failed to collect query metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			queriesDesc,
			prometheus.CounterValue,
			float64(s.Count),
			string(s.Category),
			s.Intent,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(src StatsSource) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewQueryCollector(src), historyWrites, historyDropped)
	})
}

// RecordHistoryWrite counts one history write outcome.
func RecordHistoryWrite(result string) {
	historyWrites.WithLabelValues(result).Inc()
}

// RecordHistoryDropped counts one record dropped before it reached the queue.
func RecordHistoryDropped() {
	historyDropped.Inc()
}
