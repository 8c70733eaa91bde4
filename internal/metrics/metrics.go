package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exercised by the chat relay and the detection service.
var (
	MessagesPersisted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudshield_messages_persisted_total",
		Help: "Durable chat messages written, labeled by role.",
	}, []string{"role"})

	IncrementsRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fraudshield_stream_increments_relayed_total",
		Help: "Reply text increments forwarded to clients.",
	})

	StreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudshield_stream_failures_total",
		Help: "Relay failures, labeled by phase (pre_stream, mid_stream).",
	}, []string{"phase"})

	DetectionsAnalyzed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudshield_detections_analyzed_total",
		Help: "Deepfake analyses performed, labeled by mode (vendor, simulation).",
	}, []string{"mode"})

	ReportsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fraudshield_scam_reports_submitted_total",
		Help: "Scam reports accepted by the radar.",
	})
)
