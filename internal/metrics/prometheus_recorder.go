package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	stageDuration      *prom.HistogramVec
	generationDuration prom.Histogram
	stageResults       *prom.CounterVec
	generationOutcome  *prom.CounterVec
	pageRender         *prom.HistogramVec
	contentProvider    *prom.CounterVec
	filesWritten       prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "siteforge",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.generationDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "siteforge",
			Name:      "generation_duration_seconds",
			Help:      "Total project generation duration",
			Buckets:   prom.DefBuckets,
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteforge",
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.generationOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteforge",
			Name:      "generation_outcomes_total",
			Help:      "Generation outcomes by final status",
		}, []string{"outcome"})
		pr.pageRender = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "siteforge",
			Name:      "page_render_duration_seconds",
			Help:      "Duration of individual page renders",
			Buckets:   prom.DefBuckets,
		}, []string{"framework"})
		pr.contentProvider = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteforge",
			Name:      "content_provider_total",
			Help:      "Pages resolved per content provider",
		}, []string{"provider"})
		pr.filesWritten = prom.NewCounter(prom.CounterOpts{
			Namespace: "siteforge",
			Name:      "files_written_total",
			Help:      "Total files written to output directories",
		})
		reg.MustRegister(pr.stageDuration, pr.generationDuration, pr.stageResults,
			pr.generationOutcome, pr.pageRender, pr.contentProvider, pr.filesWritten)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncGenerationOutcome(outcome string) {
	p.generationOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObservePageRender(framework string, d time.Duration) {
	p.pageRender.WithLabelValues(framework).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncContentProvider(provider string) {
	p.contentProvider.WithLabelValues(provider).Inc()
}

func (p *PrometheusRecorder) IncFilesWritten(n int) {
	p.filesWritten.Add(float64(n))
}
