// Package chat is the chat transport: a broadcast hub fed by websocket
// connections, the HTTP API around the wordbook and the metrics endpoint.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/internal/bot"
)

// Message is a chat message as broadcast to every subscriber.
type Message struct {
	ID     string    `json:"id"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

const (
	clientBuffer = 32
	feedBuffer   = 256
)

// subscriber is one connection's outbound queue.
type subscriber struct {
	name string
	send chan Message
}

// Hub fans messages out to subscribers. One goroutine (Run) owns the
// subscriber set; everything else talks to it through channels.
type Hub struct {
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan Message
	feed       chan Message
	done       chan struct{}

	log *log.Entry
}

// NewHub creates a hub. Call Run to start it.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Hub{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan Message, clientBuffer),
		feed:       make(chan Message, feedBuffer),
		done:       make(chan struct{}),
		log:        logger.WithField("component", "hub"),
	}
}

// Run serves the hub until ctx is done, then closes every subscriber.
func (h *Hub) Run(ctx context.Context) {
	subs := make(map[*subscriber]bool)
	defer func() {
		close(h.done)
		for s := range subs {
			close(s.send)
		}
		connectedClients.Set(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			subs[s] = true
			connectedClients.Set(float64(len(subs)))
			h.log.WithField("name", s.name).Info("client joined")

		case s := <-h.unregister:
			if subs[s] {
				delete(subs, s)
				close(s.send)
				connectedClients.Set(float64(len(subs)))
				h.log.WithField("name", s.name).Info("client left")
			}

		case m := <-h.broadcast:
			messagesTotal.Inc()
			for s := range subs {
				select {
				case s.send <- m:
				default:
					// slow reader
					delete(subs, s)
					close(s.send)
					h.log.WithField("name", s.name).Warn("client dropped")
				}
			}
			connectedClients.Set(float64(len(subs)))

			select {
			case h.feed <- m:
			default:
				h.log.WithField("id", m.ID).Warn("feed full, message not seen by bot")
			}
		}
	}
}

// Publish broadcasts text from author and returns the stamped message.
// ok is false once the hub has stopped.
func (h *Hub) Publish(author, text string) (Message, bool) {
	m := Message{
		ID:     uuid.New().String(),
		Author: author,
		Text:   text,
		SentAt: time.Now().UTC(),
	}
	select {
	case <-h.done:
		return m, false
	default:
	}
	select {
	case h.broadcast <- m:
		return m, true
	case <-h.done:
		return m, false
	}
}

// Feed carries every broadcast message, in order.
func (h *Hub) Feed() <-chan Message {
	return h.feed
}

// subscribe registers a new subscriber and returns its queue.
func (h *Hub) subscribe(name string) (*subscriber, bool) {
	s := &subscriber{name: name, send: make(chan Message, clientBuffer)}
	select {
	case h.register <- s:
		return s, true
	case <-h.done:
		return nil, false
	}
}

func (h *Hub) unsubscribe(s *subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// RunBot answers feed messages with b until ctx is done. Replies are
// published under the bot's name, which the bot itself then ignores.
func RunBot(ctx context.Context, h *Hub, b *bot.Bot) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case m := <-h.feed:
			reply, ok := b.Handle(bot.Message{Author: m.Author, Text: m.Text})
			if !ok {
				continue
			}
			if _, ok := h.Publish(b.Name(), reply); !ok {
				return
			}
		}
	}
}
