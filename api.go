package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Server wires the timer registry and the action log to HTTP routes.
type Server struct {
	config   *TickConfig
	registry *Registry
	history  *History
}

func NewServer(config *TickConfig, registry *Registry, history *History) *Server {
	return &Server{
		config:   config,
		registry: registry,
		history:  history,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(log.Middleware())

	r.GET("/", indexHandler)
	r.GET("/health", s.healthHandler)

	r.GET("/timers", s.statusAllHandler)
	r.GET("/timer/:idx/start", s.timerHandler(OpStart))
	r.GET("/timer/:idx/stop", s.timerHandler(OpStop))
	r.GET("/timer/:idx/reset", s.timerHandler(OpReset))

	r.GET("/history", s.historyHandler)

	return r
}

func (s *Server) statusAllHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.StatusAll())
}

func (s *Server) timerHandler(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("idx"))
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "invalid timer")

			return
		}

		status, err := s.registry.Apply(idx, op)
		if err != nil {
			if errors.Is(err, ErrInvalidTimer) {
				errorResponse(c, http.StatusBadRequest, "invalid timer")
			} else {
				errorResponse(c, http.StatusInternalServerError, err.Error())
			}

			return
		}

		s.record(idx, op, status.Seconds)

		c.JSON(http.StatusOK, status)
	}
}

// record appends to the action log. Failures are logged and swallowed, the
// timer operation itself already succeeded.
func (s *Server) record(idx int, action string, seconds int64) {
	if s.history == nil {
		return
	}

	err := s.history.Record(idx, action, seconds)
	if err != nil {
		log.WarningF("Failed to record %s for timer %d: %v\n", action, idx, err)
	}
}

func (s *Server) historyHandler(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusOK, []TimerEvent{})

		return
	}

	limit := s.config.History.Limit

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errorResponse(c, http.StatusBadRequest, "invalid limit")

			return
		}

		limit = n
	}

	events, err := s.history.Recent(limit)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, events)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": Version,
		"timers":  s.registry.Count(),
	})
}
