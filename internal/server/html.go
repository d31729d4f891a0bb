package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-jobform/pkg/application"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

func (s *Server) showForm(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeView(c, http.StatusOK)
}

// postForm applies the posted values of the active step, then the intent.
// A header button posts only a target, which is read as a jump.
func (s *Server) postForm(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wizard.Submitted() {
		s.writeView(c, http.StatusConflict)
		return
	}

	if err := s.applyPostedFields(c); err != nil {
		s.logger.Printf("server: apply fields: %v", err)
		s.writeView(c, statusFor(err))
		return
	}

	target, err := parseTarget(c.PostForm("target"))
	if err != nil {
		s.writeView(c, http.StatusBadRequest)
		return
	}
	intent := c.PostForm("intent")
	if intent == "" && target != nil {
		intent = intentJump
	}

	if _, err := s.apply(c.Request.Context(), intent, target); err != nil {
		s.logger.Printf("server: %s intent: %v", intent, err)
		s.writeView(c, statusFor(err))
		return
	}
	c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
}

func (s *Server) applyPostedFields(c *gin.Context) error {
	step := s.wizard.Step()
	for _, spec := range application.SpecsForStep(int(step)) {
		if spec.Kind == application.InputCheckbox {
			// Unchecked boxes are not posted at all.
			value, ok := c.GetPostForm(string(spec.Name))
			if err := s.wizard.SetTerms(ok && application.ParseTerms(value)); err != nil {
				return err
			}
			continue
		}
		value, ok := c.GetPostForm(string(spec.Name))
		if !ok {
			continue
		}
		if err := s.wizard.SetField(spec.Name, value); err != nil {
			return err
		}
		if step == wizard.StepPersonal {
			if err := s.wizard.Blur(spec.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Server) writeView(c *gin.Context, status int) {
	body, err := s.renderer.Render(c.Request.Context(), s.wizard.View(), s.renderOpts)
	if err != nil {
		s.logger.Printf("server: render: %v", err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(status, s.renderer.ContentType(), body)
}
