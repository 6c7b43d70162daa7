package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	breaksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eggbreak_breaks_total",
		Help: "Successful break attempts by outcome.",
	}, []string{"outcome"})

	linksConsumedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eggbreak_links_consumed_total",
		Help: "Single-use links consumed by a break.",
	})

	claimsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eggbreak_claims_total",
		Help: "Reward claims performed.",
	})

	resetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eggbreak_resets_total",
		Help: "Manual game resets.",
	})
)
