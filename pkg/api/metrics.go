package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Codec operation metrics
	framesEncodedTotal *prometheus.CounterVec
	framesDecodedTotal *prometheus.CounterVec
	frameBytesTotal    *prometheus.CounterVec
	codecDuration      *prometheus.HistogramVec

	// Capture log metrics
	captureOperationsTotal *prometheus.CounterVec
	captureLogSizeBytes    prometheus.Gauge

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec

	// Health check metrics
	healthChecksTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		// HTTP request metrics
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "minibit_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "minibit_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		// Codec operation metrics
		framesEncodedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_frames_encoded_total",
				Help: "Total number of frames encoded",
			},
			[]string{"msg_type", "status"},
		),

		framesDecodedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_frames_decoded_total",
				Help: "Total number of frames decoded",
			},
			[]string{"msg_type", "status"},
		),

		frameBytesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_frame_bytes_total",
				Help: "Total frame bytes processed",
			},
			[]string{"direction"},
		),

		codecDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "minibit_codec_duration_seconds",
				Help:    "Codec operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		// Capture log metrics
		captureOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_capture_operations_total",
				Help: "Total number of capture log operations",
			},
			[]string{"operation", "status"},
		),

		captureLogSizeBytes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "minibit_capture_log_size_bytes",
				Help: "Current size of the capture log in bytes",
			},
		),

		// Authentication metrics
		authRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),

		// Health check metrics
		healthChecksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibit_health_checks_total",
				Help: "Total number of health checks",
			},
			[]string{"status"},
		),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordEncode records a frame encode operation
func (m *Metrics) RecordEncode(msgType uint16, success bool, size int, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.framesEncodedTotal.WithLabelValues(strconv.Itoa(int(msgType)), status).Inc()
	m.codecDuration.WithLabelValues("encode").Observe(duration.Seconds())
	if success {
		m.frameBytesTotal.WithLabelValues("encoded").Add(float64(size))
	}
}

// RecordDecode records a frame decode operation
func (m *Metrics) RecordDecode(msgType uint16, success bool, size int, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.framesDecodedTotal.WithLabelValues(strconv.Itoa(int(msgType)), status).Inc()
	m.codecDuration.WithLabelValues("decode").Observe(duration.Seconds())
	if success {
		m.frameBytesTotal.WithLabelValues("decoded").Add(float64(size))
	}
}

// RecordCaptureOperation records a capture log operation
func (m *Metrics) RecordCaptureOperation(operation string, success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.captureOperationsTotal.WithLabelValues(operation, status).Inc()
}

// UpdateCaptureLogSize updates the capture log size gauge
func (m *Metrics) UpdateCaptureLogSize(size int64) {
	m.captureLogSizeBytes.Set(float64(size))
}

// RecordAuthRequest records an authentication request
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// RecordHealthCheck records a health check
func (m *Metrics) RecordHealthCheck(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.healthChecksTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Record request in flight
		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		// Create response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		// Call the original handler
		handler(rw, r)

		// Record metrics
		duration := time.Since(start)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, duration)
	}
}

// InstrumentAuthMiddleware instruments the authentication middleware
func (m *Metrics) InstrumentAuthMiddleware(next func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check if API key is present
			apiKey := r.Header.Get("X-API-Key")
			hasAPIKey := apiKey != ""

			// Call the auth middleware
			next(h).ServeHTTP(w, r)

			// Record auth metrics based on response status
			if rw, ok := w.(*responseWriter); ok {
				success := rw.statusCode != http.StatusUnauthorized
				if hasAPIKey {
					m.RecordAuthRequest(success)
				}
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
