// Package students — простой CRUD поверх реляционного стора.
// Идентификатор задаёт вызывающий и он неизменяем; конфликты и
// отсутствие строк приходят из репозитория как ErrConflict/ErrNotFound.
package students

import (
	"context"
	"fmt"
	"log"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

type Ledger struct {
	log  *log.Logger
	repo domain.StudentsRepo
}

func New(logger *log.Logger, repo domain.StudentsRepo) *Ledger {
	return &Ledger{log: logger, repo: repo}
}

func (l *Ledger) Create(ctx context.Context, s domain.Student) (domain.Student, error) {
	if err := requireFields(s.ID, s.Name, s.Email); err != nil {
		return domain.Student{}, err
	}
	return l.repo.CreateStudent(ctx, s)
}

func (l *Ledger) List(ctx context.Context) ([]domain.Student, error) {
	return l.repo.ListStudents(ctx)
}

func (l *Ledger) Update(ctx context.Context, id domain.StudentID, name, email string) (domain.Student, error) {
	if err := requireFields(id, name, email); err != nil {
		return domain.Student{}, err
	}
	return l.repo.UpdateStudent(ctx, id, name, email)
}

func (l *Ledger) Delete(ctx context.Context, id domain.StudentID) error {
	if id == "" {
		return fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return l.repo.DeleteStudent(ctx, id)
}

func requireFields(id, name, email string) error {
	switch {
	case id == "":
		return fmt.Errorf("id is required: %w", domain.ErrValidation)
	case name == "":
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	case email == "":
		return fmt.Errorf("email is required: %w", domain.ErrValidation)
	}
	return nil
}
