package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
)

type metrics struct {
	requestsTotal *prometheus.CounterVec
	itemFetches   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	namespace := branding.CLIName()

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "requests_total",
			Help:      "Total number of registry HTTP requests",
		}, []string{"route", "status"}),

		itemFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "item_fetches_total",
			Help:      "Total number of registry items served, by component",
		}, []string{"name"}),
	}
}
