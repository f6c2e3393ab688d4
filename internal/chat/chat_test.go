package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/wordrighter/internal/bot"
	"github.com/kittclouds/wordrighter/internal/config"
	"github.com/kittclouds/wordrighter/internal/store"
	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/righter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	lex    *lexicon.Lexicon
	bot    *bot.Bot
	store  *store.MemStore
	hub    *Hub
	server *Server
	router *gin.Engine
}

func setup(t *testing.T, token string) *fixture {
	t.Helper()
	logger := log.New()
	logger.SetOutput(io.Discard)

	lex := lexicon.Build(map[string]lexicon.Replacement{
		"bad weather": lexicon.NewLiteral("a sunny day"),
	})
	p := righter.New(lex)
	s := store.NewMemStore()
	b := bot.New(config.Default().Bot, lex, p, s, logger)
	h := NewHub(logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	go RunBot(ctx, h, b)

	srv := NewServer(b, p, h, token, logger)
	return &fixture{lex: lex, bot: b, store: s, hub: h, server: srv, router: srv.Router()}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func receive(t *testing.T, ch <-chan Message) Message {
	t.Helper()
	select {
	case m, ok := <-ch:
		require.True(t, ok, "queue closed")
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
		return Message{}
	}
}

// =============================================================================
// Hub
// =============================================================================

func TestHubBroadcast(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	h := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	alice, ok := h.subscribe("alice")
	require.True(t, ok)
	bob, ok := h.subscribe("bob")
	require.True(t, ok)

	sent, ok := h.Publish("alice", "hello")
	require.True(t, ok)
	assert.NotEmpty(t, sent.ID)

	for _, sub := range []*subscriber{alice, bob} {
		got := receive(t, sub.send)
		assert.Equal(t, sent, got)
	}
	assert.Equal(t, sent, receive(t, h.Feed()))

	h.unsubscribe(bob)
	_, open := <-bob.send
	assert.False(t, open, "unsubscribe closes the queue")
}

func TestHubStops(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	h := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	sub, ok := h.subscribe("alice")
	require.True(t, ok)
	cancel()

	_, open := <-sub.send
	assert.False(t, open)
	_, ok = h.Publish("alice", "late")
	assert.False(t, ok)
	_, ok = h.subscribe("bob")
	assert.False(t, ok)
}

func TestBotIgnoresItself(t *testing.T) {
	f := setup(t, "")
	sub, ok := f.hub.subscribe("watcher")
	require.True(t, ok)

	_, ok = f.hub.Publish("alice", "$sayback the bad weather")
	require.True(t, ok)

	first := receive(t, sub.send)
	assert.Equal(t, "alice", first.Author)

	reply := receive(t, sub.send)
	assert.Equal(t, f.bot.Name(), reply.Author)
	assert.Equal(t, "the bad weather", reply.Text)

	// the echo contains a wordbook phrase, but the bot never answers itself
	select {
	case m := <-sub.send:
		t.Fatalf("unexpected message %+v", m)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestBotCorrectsChat(t *testing.T) {
	f := setup(t, "")
	sub, ok := f.hub.subscribe("watcher")
	require.True(t, ok)

	_, ok = f.hub.Publish("alice", "the bad weather today")
	require.True(t, ok)

	receive(t, sub.send)
	reply := receive(t, sub.send)
	assert.Equal(t, "the a sunny day today", reply.Text)
}

// =============================================================================
// HTTP API
// =============================================================================

func TestHealth(t *testing.T) {
	f := setup(t, "")
	w := f.do(t, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, HealthResponse{Status: "ok", Entries: 1}, resp)
}

func TestCorrect(t *testing.T) {
	f := setup(t, "")

	w := f.do(t, http.MethodPost, "/v1/correct", `{"text": "the bad weather today"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp CorrectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CorrectResponse{Text: "the a sunny day today", Changed: true}, resp)

	w = f.do(t, http.MethodPost, "/v1/correct", `{"text": "$sayback hi"}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Changed, "commands are not run")

	w = f.do(t, http.MethodPost, "/v1/correct", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWordbookRoutes(t *testing.T) {
	f := setup(t, "")

	w := f.do(t, http.MethodPost, "/v1/wordbook", `{"phrase": "mouse", "replacement": {"NN": "rat", "NNS": "rats"}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/v1/wordbook", `{"phrase": "bad weather", "replacement": "rain"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	var conflict StandinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, "a sunny day", conflict.Replacement.Literal())
	assert.False(t, conflict.Created)

	w = f.do(t, http.MethodPost, "/v1/wordbook", `{"phrase": "  ", "replacement": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do(t, http.MethodPost, "/v1/wordbook", `{"phrase": "cat"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/v1/wordbook", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bad weather": "a sunny day", "mouse": {"NN": "rat", "NNS": "rats"}}`, w.Body.String())

	w = f.do(t, http.MethodPost, "/v1/wordbook/spare", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries": 2}`, w.Body.String())
	assert.Equal(t, 1, f.store.Saves())
}

func TestMentionsRoute(t *testing.T) {
	f := setup(t, "")

	w := f.do(t, http.MethodGet, "/v1/mentions?text=Bad+Weather+again", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp MentionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Mentions, 1)
	assert.Equal(t, lexicon.Mention{Key: "bad weather", Text: "Bad Weather", Start: 0, End: 11}, resp.Mentions[0])

	w = f.do(t, http.MethodGet, "/v1/mentions?text=nothing", "")
	assert.JSONEq(t, `{"mentions": []}`, w.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	f := setup(t, "")
	f.do(t, http.MethodPost, "/v1/correct", `{"text": "the bad weather"}`)

	w := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wordrighter_process_total")
}

func TestToken(t *testing.T) {
	f := setup(t, "s3cret")

	w := f.do(t, http.MethodGet, "/v1/wordbook", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/v1/wordbook?token=s3cret", "")
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/wordbook", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	w = f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code, "health is open")
}

// =============================================================================
// Websocket
// =============================================================================

func TestWebSocketChat(t *testing.T) {
	f := setup(t, "")
	ts := httptest.NewServer(f.router)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?name=bob"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"text": "the bad weather today"}))

	var mine, reply Message
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&mine))
	assert.Equal(t, "bob", mine.Author)
	assert.Equal(t, "the bad weather today", mine.Text)

	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, f.bot.Name(), reply.Author)
	assert.Equal(t, "the a sunny day today", reply.Text)
	assert.NotEqual(t, mine.ID, reply.ID)
}

func TestWebSocketReservedName(t *testing.T) {
	f := setup(t, "")
	ts := httptest.NewServer(f.router)
	defer ts.Close()

	base := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?name="
	for _, name := range []string{f.bot.Name(), strings.ToUpper(f.bot.Name())} {
		_, resp, err := websocket.DefaultDialer.Dial(base+name, nil)
		require.Error(t, err, name)
		require.NotNil(t, resp, name)
		assert.Equal(t, http.StatusConflict, resp.StatusCode, name)
	}
}

func TestWebSocketToken(t *testing.T) {
	f := setup(t, "s3cret")
	ts := httptest.NewServer(f.router)
	defer ts.Close()

	base := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(base, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(base+"?token=s3cret", nil)
	require.NoError(t, err)
	conn.Close()
}
