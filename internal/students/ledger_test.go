package students

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

type fakeStudentsRepo struct {
	rows  map[domain.StudentID]domain.Student
	order []domain.StudentID
}

func newFakeStudentsRepo() *fakeStudentsRepo {
	return &fakeStudentsRepo{rows: map[domain.StudentID]domain.Student{}}
}

func (r *fakeStudentsRepo) Close()                     {}
func (r *fakeStudentsRepo) Ping(context.Context) error { return nil }

func (r *fakeStudentsRepo) CreateStudent(_ context.Context, s domain.Student) (domain.Student, error) {
	if _, ok := r.rows[s.ID]; ok {
		return domain.Student{}, fmt.Errorf("student %s: %w", s.ID, domain.ErrConflict)
	}
	r.rows[s.ID] = s
	r.order = append(r.order, s.ID)
	return s, nil
}

func (r *fakeStudentsRepo) ListStudents(context.Context) ([]domain.Student, error) {
	var out []domain.Student
	for _, id := range r.order {
		out = append(out, r.rows[id])
	}
	return out, nil
}

func (r *fakeStudentsRepo) UpdateStudent(_ context.Context, id domain.StudentID, name, email string) (domain.Student, error) {
	if _, ok := r.rows[id]; !ok {
		return domain.Student{}, fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
	}
	s := domain.Student{ID: id, Name: name, Email: email}
	r.rows[id] = s
	return s, nil
}

func (r *fakeStudentsRepo) DeleteStudent(_ context.Context, id domain.StudentID) error {
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
	}
	delete(r.rows, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestLedger() (*Ledger, *fakeStudentsRepo) {
	repo := newFakeStudentsRepo()
	return New(log.New(io.Discard, "", 0), repo), repo
}

func TestCreateAndListRoundTrip(t *testing.T) {
	l, _ := newTestLedger()
	ctx := context.Background()

	s, err := l.Create(ctx, domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"})
	require.NoError(t, err)
	assert.Equal(t, "100200", s.ID)

	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"}, list[0])
}

func TestCreateDuplicateConflicts(t *testing.T) {
	l, _ := newTestLedger()
	ctx := context.Background()

	_, err := l.Create(ctx, domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"})
	require.NoError(t, err)

	_, err = l.Create(ctx, domain.Student{ID: "100200", Name: "Bruno", Email: "bruno@fi.uba.ar"})
	require.ErrorIs(t, err, domain.ErrConflict)

	// конфликт не затирает существующую строку
	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
}

func TestCreateMissingFields(t *testing.T) {
	l, _ := newTestLedger()
	ctx := context.Background()

	cases := []domain.Student{
		{Name: "Ana", Email: "ana@fi.uba.ar"},
		{ID: "100200", Email: "ana@fi.uba.ar"},
		{ID: "100200", Name: "Ana"},
	}
	for _, s := range cases {
		_, err := l.Create(ctx, s)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	l, repo := newTestLedger()
	ctx := context.Background()

	_, err := l.Create(ctx, domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"})
	require.NoError(t, err)

	_, err = l.Update(ctx, "999999", "Bruno", "bruno@fi.uba.ar")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, "Ana", repo.rows["100200"].Name)
}

func TestUpdateRewritesNameAndEmail(t *testing.T) {
	l, _ := newTestLedger()
	ctx := context.Background()

	_, err := l.Create(ctx, domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"})
	require.NoError(t, err)

	s, err := l.Update(ctx, "100200", "Ana Maria", "anamaria@fi.uba.ar")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", s.Name)
	assert.Equal(t, "anamaria@fi.uba.ar", s.Email)
}

func TestDeleteMissing(t *testing.T) {
	l, _ := newTestLedger()

	err := l.Delete(context.Background(), "999999")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteRemovesRow(t *testing.T) {
	l, _ := newTestLedger()
	ctx := context.Background()

	_, err := l.Create(ctx, domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"})
	require.NoError(t, err)

	require.NoError(t, l.Delete(ctx, "100200"))

	list, err := l.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
