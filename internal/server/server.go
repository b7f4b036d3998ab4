// Package server exposes the analyzer over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"textlens/config"
	"textlens/internal/domain"
	"textlens/internal/usecase"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Result string                 `json:"result"`
	Report *domain.AnalysisReport `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Server routes HTTP requests to the analyze use case.
type Server struct {
	analyze *usecase.AnalyzeUseCase
	cfg     config.ServerConfig
	metrics *Metrics
	log     logrus.FieldLogger
	engine  *gin.Engine
}

// New builds the router. Metrics are collected only when cfg.Metrics is set.
func New(analyze *usecase.AnalyzeUseCase, cfg config.ServerConfig, log logrus.FieldLogger) *Server {
	s := &Server{
		analyze: analyze,
		cfg:     cfg,
		log:     log,
	}
	if cfg.Metrics {
		s.metrics = NewMetrics()
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(s.log))
	if s.cfg.CORS {
		r.Use(CORSMiddleware())
	}

	r.POST("/analyze", s.handleAnalyze)
	r.GET("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	return r
}

func (s *Server) handleAnalyze(c *gin.Context) {
	start := time.Now()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A missing or unreadable body is treated as empty input.
		req.Text = ""
	}

	report, err := s.analyze.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			if s.metrics != nil {
				s.metrics.ObserveRejection(string(verr.Kind))
			}
			c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Message, Code: string(verr.Kind)})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Ichki xatolik.", Code: "internal"})
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveReport(report.Origin, time.Since(start))
	}
	c.JSON(http.StatusOK, analyzeResponse{Result: report.Message, Report: report})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"remote": s.analyze.HasRemote(),
	})
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("Shutting down server")
	return srv.Shutdown(shutdownCtx)
}
