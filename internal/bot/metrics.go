package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordrighter_bot_commands_total",
		Help: "Bot commands handled, by command",
	}, []string{"command"})

	repliesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordrighter_bot_corrections_total",
		Help: "Ordinary messages the bot answered with a correction",
	})

	persistErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordrighter_bot_persist_errors_total",
		Help: "Failed wordbook persists",
	})
)
