package students

import (
	"context"
	"log"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

// Ledger — порт к ядру студентов
type Ledger interface {
	Create(ctx context.Context, s domain.Student) (domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Update(ctx context.Context, id domain.StudentID, name, email string) (domain.Student, error)
	Delete(ctx context.Context, id domain.StudentID) error
}

type Handler struct {
	Log    *log.Logger
	Ledger Ledger
}
