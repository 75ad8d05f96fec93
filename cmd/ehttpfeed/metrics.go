package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "ehttpfeed"

var (
	connectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "connections_total",
			Help:      "Accepted connections total",
		},
	)

	messagesParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "messages_parsed_total",
			Help:      "Messages parsed to completion, labeled by request method",
		},
		[]string{"method"},
	)

	parseErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "parse_errors_total",
			Help:      "Feed calls that returned a grammar or framing error",
		},
	)

	bytesFedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bytes_fed_total",
			Help:      "Bytes handed to Feed across all connections",
		},
	)
)
