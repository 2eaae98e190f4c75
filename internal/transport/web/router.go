package web

import (
	"log"
	"net/http"

	_ "github.com/Nicolas152/BDD-Funes-Morales/internal/docs"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/exam"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/health"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/students"
	httpSwagger "github.com/swaggo/http-swagger"
)

func newRouter(hh *health.Handler, sh *students.Handler, eh *exam.Handler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// students (Postgres)
	mux.HandleFunc("POST /v1/students", sh.Create)
	mux.HandleFunc("GET /v1/students", sh.List)
	mux.HandleFunc("PUT /v1/students/{id}", sh.Update)
	mux.HandleFunc("DELETE /v1/students/{id}", sh.Delete)

	// exams (Mongo + S3)
	mux.HandleFunc("POST /v1/exams", limitBody(64<<20, eh.Create)) // 64MB лимит
	mux.HandleFunc("GET /v1/exams", eh.List)
	mux.HandleFunc("GET /v1/exams/{id}", eh.GetOne)
	mux.HandleFunc("PUT /v1/exams/{id}", limitBody(64<<20, eh.Update))
	mux.HandleFunc("DELETE /v1/exams/{id}", eh.Delete)
	mux.HandleFunc("GET /v1/exams/{id}/file", eh.Download)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
