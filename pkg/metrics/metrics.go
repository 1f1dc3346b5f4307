package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "website_ideas", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "website_ideas", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	IdeasCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "website_ideas", Name: "created_total", Help: "Number of website ideas persisted."},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "website_ideas", Name: "store_errors_total", Help: "Failed store operations by operation and error kind."},
		[]string{"operation", "kind"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(IdeasCreated)
	reg.MustRegister(StoreErrors)
}
