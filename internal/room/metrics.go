package room

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	roomsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rooms_created_total",
			Help: "Total rooms created",
		},
	)
	guestsJoined = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "room_joins_total",
			Help: "Total successful guest joins",
		},
	)
	roundsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rounds_resolved_total",
			Help: "Total resolved rounds by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(roomsCreated)
	prometheus.MustRegister(guestsJoined)
	prometheus.MustRegister(roundsResolved)
}
