package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

type fieldRequest struct {
	Value string `json:"value"`
}

type navigateRequest struct {
	Intent string `json:"intent" binding:"required"`
	Target *int   `json:"target"`
}

type stateResponse struct {
	State      wizard.State            `json:"state"`
	Submission *application.Submission `json:"submission,omitempty"`
}

func (s *Server) state(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, stateResponse{State: s.wizard.State()})
}

func (s *Server) setField(c *gin.Context) {
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	name := application.FieldName(strings.TrimSpace(c.Param("name")))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.respond(c, s.wizard.SetField(name, req.Value), nil)
}

func (s *Server) blur(c *gin.Context) {
	name := application.FieldName(strings.TrimSpace(c.Param("name")))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.respond(c, s.wizard.Blur(name), nil)
}

func (s *Server) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub, err := s.apply(c.Request.Context(), req.Intent, req.Target)
	if err != nil {
		s.logger.Printf("server: %s intent: %v", req.Intent, err)
		s.respond(c, err, nil)
		return
	}
	if s.wizard.Submitted() && sub.ID != "" {
		s.respond(c, nil, &sub)
		return
	}
	s.respond(c, nil, nil)
}

// respond writes the state, or the error alongside the state. The caller
// holds s.mu.
func (s *Server) respond(c *gin.Context, err error, sub *application.Submission) {
	state := s.wizard.State()
	if err == nil {
		c.JSON(http.StatusOK, stateResponse{State: state, Submission: sub})
		return
	}
	c.JSON(statusFor(err), gin.H{
		"error":  err.Error(),
		"errors": state.Errors,
		"state":  state,
	})
}
