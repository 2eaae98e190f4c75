package web

import (
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/exam"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/health"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1/students"
)

// Deps — всё, что сервер прокидывает в хендлеры; собирается один раз в app
type Deps struct {
	Students students.Ledger
	Exams    exam.Catalog

	DB      health.Pinger
	Docs    health.Pinger
	Storage health.Pinger
}
