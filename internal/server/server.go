package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rishika0704/promptforge/internal/pipeline"
)

// Refinery processes a prompt into both refined versions.
type Refinery interface {
	Process(ctx context.Context, prompt string) (*pipeline.Result, error)
}

// Server exposes the refinement pipeline over HTTP: an embedded UI page,
// a JSON API, and a health endpoint.
type Server struct {
	refinery Refinery
}

// New creates a new Server.
func New(refinery Refinery) *Server {
	return &Server{refinery: refinery}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", s.index)
	router.GET("/healthz", s.health)
	router.POST("/api/v1/refine", s.refine)

	return router
}

type refineRequest struct {
	Prompt string `json:"prompt"`
}

// refine handles POST /api/v1/refine.
func (s *Server) refine(c *gin.Context) {
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	result, err := s.refinery.Process(c.Request.Context(), req.Prompt)
	if err != nil {
		slog.Error("refinement failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refine prompt"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}
