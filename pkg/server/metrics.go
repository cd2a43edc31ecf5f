package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	terminatedTransactionsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphd_admin_terminated_transactions_total",
		Help: "Number of transactions terminated through the admin API.",
	})

	terminatedConnectionsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphd_admin_terminated_connections_total",
		Help: "Number of client connections terminated through the admin API.",
	})

	terminatedQueriesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphd_admin_terminated_queries_total",
		Help: "Number of executing queries terminated through the admin API.",
	})
)
