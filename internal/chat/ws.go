package chat

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// inbound is what a client sends.
type inbound struct {
	Text string `json:"text"`
}

// HandleWebSocket handles GET /ws. The connection joins the hub under
// ?name=, or a random id when none is given. The bot's name is reserved.
func (s *Server) HandleWebSocket(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		name = uuid.New().String()
	}
	if strings.EqualFold(name, s.bot.Name()) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: "name " + name + " is reserved",
			Code:  "NAME_TAKEN",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	sub, ok := s.hub.subscribe(name)
	if !ok {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
		return
	}

	entry := s.log.WithField("name", name)
	go writePump(conn, sub, entry)
	s.readPump(conn, sub, entry)
}

// readPump publishes every text the client sends until the connection drops.
func (s *Server) readPump(conn *websocket.Conn, sub *subscriber, entry *log.Entry) {
	defer func() {
		s.hub.unsubscribe(sub)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in inbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				entry.WithError(err).Warn("websocket read failed")
			}
			return
		}
		if strings.TrimSpace(in.Text) == "" {
			continue
		}
		if _, ok := s.hub.Publish(sub.name, in.Text); !ok {
			return
		}
	}
}

// writePump sends queued messages and keeps the connection alive with
// pings. It exits when the hub closes the queue.
func writePump(conn *websocket.Conn, sub *subscriber, entry *log.Entry) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case m, ok := <-sub.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(m); err != nil {
				entry.WithError(err).Debug("websocket write failed")
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
