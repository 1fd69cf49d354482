package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	}, []string{"activity"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	}, []string{"activity"})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected signup or unregister attempts by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter)
}

// RecordSignup counts a successful signup for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregistration counts a successful unregistration for the activity.
func RecordUnregistration(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}

// RecordRejection counts a rejected request by reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}
