// Package metrics exposes Prometheus instrumentation for block log analysis.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analyzerLoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "load_total",
		Help:      "Count of block log batch loads.",
	}, []string{"ticker", "status"})

	analyzerLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "load_duration_seconds",
		Help:      "Duration of loading and decoding a batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ticker", "status"})

	analyzerBatchBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "batch_blocks",
		Help:      "Number of blocks in the last batch, before and after deduplication.",
	}, []string{"ticker", "stage"})

	analyzerDuplicatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "duplicate_blocks_total",
		Help:      "Count of block records dropped as duplicates.",
	}, []string{"ticker"})

	analyzerForkPoints = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "fork_points",
		Help:      "Number of parent hashes claimed by more than one block in the last batch.",
	}, []string{"ticker"})

	analyzerRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "analyze_total",
		Help:      "Count of analysis runs.",
	}, []string{"ticker", "status"})

	analyzerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "analyze_duration_seconds",
		Help:      "Duration of a full analysis run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ticker", "status"})

	analyzerBranchWalkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "branch_walk_duration_seconds",
		Help:      "Duration of enumerating the branches below one fork point.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ticker", "status"})

	analyzerBranchCount = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "reorgscan",
		Name:      "branches_per_fork",
		Help:      "Number of branches found below a fork point.",
		Buckets:   prometheus.LinearBuckets(2, 1, 8), // 2..9
	}, []string{"ticker"})
)

// Analyzer records metrics of one analyzer instance.
type Analyzer struct {
	ticker string
}

// NewAnalyzer returns Analyzer metrics labeled with ticker.
func NewAnalyzer(ticker string) *Analyzer {
	if ticker == "" {
		ticker = "unknown"
	}
	return &Analyzer{ticker: ticker}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m Analyzer) ObserveLoad(err error, blocks int, started time.Time) {
	s := status(err)
	analyzerLoadTotal.WithLabelValues(m.ticker, s).Inc()
	analyzerLoadDuration.WithLabelValues(m.ticker, s).Observe(time.Since(started).Seconds())
	if err == nil {
		analyzerBatchBlocks.WithLabelValues(m.ticker, "input").Set(float64(blocks))
	}
}

func (m Analyzer) ObserveDedup(input, unique int) {
	analyzerBatchBlocks.WithLabelValues(m.ticker, "unique").Set(float64(unique))
	if dropped := input - unique; dropped > 0 {
		analyzerDuplicatesTotal.WithLabelValues(m.ticker).Add(float64(dropped))
	}
}

func (m Analyzer) ObserveForks(forks int) {
	analyzerForkPoints.WithLabelValues(m.ticker).Set(float64(forks))
}

func (m Analyzer) ObserveAnalyze(err error, started time.Time) {
	s := status(err)
	analyzerRunTotal.WithLabelValues(m.ticker, s).Inc()
	analyzerRunDuration.WithLabelValues(m.ticker, s).Observe(time.Since(started).Seconds())
}

func (m Analyzer) ObserveBranches(err error, branches int, started time.Time) {
	analyzerBranchWalkDuration.WithLabelValues(m.ticker, status(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		analyzerBranchCount.WithLabelValues(m.ticker).Observe(float64(branches))
	}
}
