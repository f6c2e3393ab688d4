package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordrighter_chat_clients",
		Help: "Connected websocket clients",
	})

	messagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordrighter_chat_messages_total",
		Help: "Messages broadcast by the hub",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordrighter_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "status"})
)
