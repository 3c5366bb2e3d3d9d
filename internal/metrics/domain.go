package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	applicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "careers",
		Name:      "applications_submitted_total",
		Help:      "Applications accepted by the public intake.",
	})

	applicationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "careers",
		Name:      "applications_refused_total",
		Help:      "Submissions refused before persisting, by reason.",
	}, []string{"reason"})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "careers",
		Name:      "application_status_transitions_total",
		Help:      "Application status changes by target status.",
	}, []string{"to", "out_of_order"})

	contactsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contacts",
		Name:      "messages_received_total",
		Help:      "Messages received through the contact form.",
	})

	uploadsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "uploads",
		Name:      "rejected_total",
		Help:      "Uploaded files rejected, by reason.",
	}, []string{"reason"})

	fileCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "uploads",
		Name:      "cleanup_failures_total",
		Help:      "Stored files that could not be removed after their record was deleted.",
	})
)

// ApplicationSubmitted counts one persisted application
func ApplicationSubmitted() {
	applicationsSubmitted.Inc()
}

// ApplicationRefused counts a submission refused for reason
func ApplicationRefused(reason string) {
	applicationsRejected.WithLabelValues(reason).Inc()
}

// StatusTransition counts an application status change
func StatusTransition(to string, outOfOrder bool) {
	statusTransitions.WithLabelValues(to, strconv.FormatBool(outOfOrder)).Inc()
}

// ContactReceived counts one contact form message
func ContactReceived() {
	contactsReceived.Inc()
}

// UploadRejected counts an uploaded file refused for reason
func UploadRejected(reason string) {
	uploadsRejected.WithLabelValues(reason).Inc()
}

// FileCleanupFailed counts a stored file that could not be removed
func FileCleanupFailed() {
	fileCleanupFailures.Inc()
}
