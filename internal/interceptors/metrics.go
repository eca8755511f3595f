package interceptors

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	namespace = "pandocwatch"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics records what the watch loop does.
type Metrics struct {
	notifications  *prometheus.CounterVec
	recompilations *prometheus.CounterVec
	duration       prometheus.Histogram
	watchedEntries prometheus.Gauge
	queued         prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Filesystem notifications received, labeled by operation",
		}, []string{"op"}),
		recompilations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompilations_total",
			Help:      "Recompilations run, labeled by result",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompilation_duration_seconds",
			Help:      "Histogram of recompilation durations in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		watchedEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "watched_entries",
			Help:      "Number of entries in the held directory snapshot",
		}),
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queued_notifications",
			Help:      "Notifications waiting for the running recompilation to finish",
		}),
	}

	reg.MustRegister(m.notifications, m.recompilations, m.duration, m.watchedEntries, m.queued)
	return m
}

func (m *Metrics) ObserveNotification(op string, queued int) {
	m.notifications.WithLabelValues(op).Inc()
	m.queued.Set(float64(queued))
}

func (m *Metrics) ObserveRecompilation(succeeded bool, d time.Duration) {
	result := ResultSuccess
	if !succeeded {
		result = ResultFailure
	}
	m.recompilations.WithLabelValues(result).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) SetWatchedEntries(n int) {
	m.watchedEntries.Set(float64(n))
}

// InterceptWithDefaultMetrics instruments the handler with in-flight, count and latency metrics.
func InterceptWithDefaultMetrics(reg prometheus.Registerer, handler http.Handler) http.Handler {
	inFlightGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_in_flight_requests",
		Help:      "Current number of in-flight HTTP requests",
	})
	requestCount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed, labeled by status code and method",
	}, []string{"code", "method"})
	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Histogram of HTTP request durations in seconds",
	}, []string{"method"})

	reg.MustRegister(inFlightGauge, requestCount, requestLatency)

	return promhttp.InstrumentHandlerInFlight(inFlightGauge,
		promhttp.InstrumentHandlerDuration(requestLatency,
			promhttp.InstrumentHandlerCounter(requestCount, handler),
		),
	)
}

// MetricsHandler exposes the registry over HTTP.
func MetricsHandler(appName string, reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	handler := otelhttp.NewHandler(mux, appName)
	return InterceptWithDefaultMetrics(reg, handler)
}

// ServeMetrics serves the metrics endpoint on addr until the context is canceled.
func ServeMetrics(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Failed to shutdown metrics server")
		}
	}()

	logger.WithField("addr", addr).Info("Serving metrics")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
