package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/config"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/exam"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/health"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/students"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, deps Deps) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	studentsLog := log.New(logger.Writer(), logger.Prefix()+"[students] ", logger.Flags())
	examsLog := log.New(logger.Writer(), logger.Prefix()+"[exams] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, DB: deps.DB, Docs: deps.Docs, Storage: deps.Storage}
	studentsHandler := &students.Handler{Log: studentsLog, Ledger: deps.Students}
	examHandler := &exam.Handler{Log: examsLog, Catalog: deps.Exams}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(healthHandler, studentsHandler, examHandler, logger),
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
