package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hellodesc", Name: "http_requests_total", Help: "Number of handled HTTP requests by route and status."},
		[]string{"route", "status"},
	)
	Descriptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hellodesc", Name: "descriptions_total", Help: "Number of descriptions rendered by outcome (generated|fallback)."},
		[]string{"outcome"},
	)
	Records = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hellodesc", Name: "records_total", Help: "Number of record inserts by backend and outcome (inserted|failed)."},
		[]string{"backend", "outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(Descriptions)
	reg.MustRegister(Records)
}
