// Package server exposes the classification engine over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cyberhelp-labs/triage/internal/engine"
	"github.com/cyberhelp-labs/triage/internal/extract"
	"github.com/cyberhelp-labs/triage/internal/model"
	"github.com/cyberhelp-labs/triage/internal/triage"
)

// ClassifyRequest is the POST /classify payload.
type ClassifyRequest struct {
	ComplaintText string `json:"complaint_text"`
}

// ConfidenceScores carries the calibrated confidences for both taxonomy
// levels.
type ConfidenceScores struct {
	PrimaryCategory float64 `json:"primary_category"`
	Subcategory     float64 `json:"subcategory"`
}

// ClassifyResponse is the full triage report for one complaint.
type ClassifyResponse struct {
	ReportID          string           `json:"report_id"`
	PrimaryCategory   string           `json:"primary_category"`
	Subcategory       string           `json:"subcategory"`
	ConfidenceScores  ConfidenceScores `json:"confidence_scores"`
	ExtractedEntities model.Entities   `json:"extracted_entities"`
	Priority          string           `json:"priority"`
	SuggestedAction   string           `json:"suggested_action"`
}

// Server wires the engine into a gin router.
type Server struct {
	engine *engine.Engine
	router *gin.Engine
}

// New builds the Server and registers all routes.
func New(eng *engine.Engine) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine: eng,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery())

	s.router.POST("/classify", s.handleClassify)
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return s
}

// Handler returns the underlying HTTP handler, used directly in tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	slog.Info("http server listening", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) handleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.ComplaintText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint_text must be a non-empty string"})
		return
	}

	res, err := s.engine.Process(req.ComplaintText)
	if err != nil {
		slog.Error("classification failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "classification failed"})
		return
	}

	ents := extract.Entities(req.ComplaintText)
	c.JSON(http.StatusOK, ClassifyResponse{
		ReportID:        uuid.NewString(),
		PrimaryCategory: res.Primary,
		Subcategory:     res.Subcategory,
		ConfidenceScores: ConfidenceScores{
			PrimaryCategory: res.PrimaryConf,
			Subcategory:     res.SubConf,
		},
		ExtractedEntities: ents,
		Priority:          triage.Priority(res, ents),
		SuggestedAction:   triage.Advise(res, ents),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
