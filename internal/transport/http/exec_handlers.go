package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/codeboard/codeboard-server/internal/runner"
)

// ExecHandlers proxies code-execution requests to the remote sandbox.
// Results are returned only to the requester, never broadcast.
type ExecHandlers struct {
	runner *runner.Client
	log    *zerolog.Logger
}

// NewExecHandlers creates a new exec handlers instance.
func NewExecHandlers(r *runner.Client, logger *zerolog.Logger) *ExecHandlers {
	return &ExecHandlers{runner: r, log: logger}
}

// RunRequest represents the code execution request body.
type RunRequest struct {
	Code     string `json:"code"`
	Language string `json:"language" binding:"required"`
}

// RunResponse represents the code execution response body.
type RunResponse struct {
	Output string `json:"output"`
}

// Run executes a code snippet remotely.
// POST /api/code/run
func (h *ExecHandlers) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid run request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	output, err := h.runner.Run(c.Request.Context(), req.Code, req.Language)
	if err != nil {
		if errors.Is(err, runner.ErrUnsupportedLanguage) {
			c.JSON(http.StatusBadRequest, RunResponse{Output: "Language not supported for execution"})
			return
		}
		h.log.Error().Err(err).Str("language", req.Language).Msg("code execution failed")
		c.JSON(http.StatusBadGateway, RunResponse{Output: "Error executing code"})
		return
	}

	c.JSON(http.StatusOK, RunResponse{Output: output})
}
