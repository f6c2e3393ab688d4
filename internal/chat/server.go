package chat

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/internal/bot"
	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/righter"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// CorrectRequest is the body of POST /v1/correct.
type CorrectRequest struct {
	Text string `json:"text"`
}

// CorrectResponse reports a corrected text.
type CorrectResponse struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// StandinRequest is the body of POST /v1/wordbook. Replacement is either a
// string or an object of tag -> form.
type StandinRequest struct {
	Phrase      string              `json:"phrase"`
	Replacement lexicon.Replacement `json:"replacement"`
}

// StandinResponse echoes the registered entry, or the one already present.
type StandinResponse struct {
	Phrase      string              `json:"phrase"`
	Replacement lexicon.Replacement `json:"replacement"`
	Created     bool                `json:"created"`
}

// SpareResponse reports a persist.
type SpareResponse struct {
	Entries int `json:"entries"`
}

// MentionsResponse lists keys found in a text.
type MentionsResponse struct {
	Mentions []lexicon.Mention `json:"mentions"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// Server holds the HTTP handlers.
type Server struct {
	bot      *bot.Bot
	pipeline *righter.Pipeline
	lex      *lexicon.Lexicon
	hub      *Hub
	token    string
	log      *log.Entry
}

// NewServer creates the handlers. An empty token disables the token check.
func NewServer(b *bot.Bot, p *righter.Pipeline, h *Hub, token string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Server{
		bot:      b,
		pipeline: p,
		lex:      p.Lexicon(),
		hub:      h,
		token:    token,
		log:      logger.WithField("component", "http"),
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/healthz", s.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", s.requireToken(), s.HandleWebSocket)

	v1 := r.Group("/v1", s.requireToken())
	{
		v1.POST("/correct", s.HandleCorrect)
		v1.GET("/wordbook", s.HandleWordbook)
		v1.POST("/wordbook", s.HandleStandin)
		v1.POST("/wordbook/spare", s.HandleSpare)
		v1.GET("/mentions", s.HandleMentions)
	}
	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"route":    route,
			"status":   status,
			"duration": time.Since(start),
		}).Debug("request")
	}
}

// requireToken accepts ?token= or an "Authorization: Bearer" header.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.token == "" {
			c.Next()
			return
		}
		got := c.Query("token")
		if got == "" {
			got = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "missing or wrong token",
				Code:  "UNAUTHORIZED",
			})
			return
		}
		c.Next()
	}
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Entries: s.lex.Len()})
}

// HandleCorrect handles POST /v1/correct. Commands are not run here.
func (s *Server) HandleCorrect(c *gin.Context) {
	var req CorrectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	text, changed := s.pipeline.Process(req.Text)
	c.JSON(http.StatusOK, CorrectResponse{Text: text, Changed: changed})
}

// HandleWordbook handles GET /v1/wordbook.
func (s *Server) HandleWordbook(c *gin.Context) {
	c.JSON(http.StatusOK, s.lex.Snapshot())
}

// HandleStandin handles POST /v1/wordbook. A phrase already present is a
// 409 carrying the existing replacement.
func (s *Server) HandleStandin(c *gin.Context) {
	var req StandinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	phrase := strings.TrimSpace(req.Phrase)
	if phrase == "" || strings.TrimSpace(req.Replacement.String()) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "phrase and replacement are required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if !s.bot.Standin(phrase, req.Replacement) {
		existing, _ := s.lex.Get(phrase)
		c.JSON(http.StatusConflict, StandinResponse{Phrase: phrase, Replacement: existing})
		return
	}
	c.JSON(http.StatusCreated, StandinResponse{Phrase: phrase, Replacement: req.Replacement, Created: true})
}

// HandleSpare handles POST /v1/wordbook/spare.
func (s *Server) HandleSpare(c *gin.Context) {
	if err := s.bot.Spare(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "PERSIST_FAILED"})
		return
	}
	c.JSON(http.StatusOK, SpareResponse{Entries: s.lex.Len()})
}

// HandleMentions handles GET /v1/mentions?text=.
func (s *Server) HandleMentions(c *gin.Context) {
	mentions, err := s.lex.Mentions(c.Query("text"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "SCAN_FAILED"})
		return
	}
	if mentions == nil {
		mentions = []lexicon.Mention{}
	}
	c.JSON(http.StatusOK, MentionsResponse{Mentions: mentions})
}
