package meeting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	meetingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meetings_created_total",
		Help: "Meetings persisted, by kind (single or series occurrence).",
	}, []string{"kind"})

	meetingConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meeting_conflicts_total",
		Help: "Rejected schedule changes, by path (create, series, update).",
	}, []string{"path"})

	meetingsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meetings_deleted_total",
		Help: "Meetings removed, by kind (single or series).",
	}, []string{"kind"})

	conflictCheckSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "meeting_conflict_check_seconds",
		Help:    "Time spent loading candidates and checking overlaps.",
		Buckets: prometheus.DefBuckets,
	})
)
