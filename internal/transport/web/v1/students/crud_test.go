package students

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

type fakeLedger struct {
	rows map[domain.StudentID]domain.Student
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: map[domain.StudentID]domain.Student{}}
}

func (f *fakeLedger) Create(_ context.Context, s domain.Student) (domain.Student, error) {
	if s.ID == "" || s.Name == "" || s.Email == "" {
		return domain.Student{}, fmt.Errorf("missing field: %w", domain.ErrValidation)
	}
	if _, ok := f.rows[s.ID]; ok {
		return domain.Student{}, fmt.Errorf("student %s: %w", s.ID, domain.ErrConflict)
	}
	f.rows[s.ID] = s
	return s, nil
}

func (f *fakeLedger) List(context.Context) ([]domain.Student, error) {
	var out []domain.Student
	for _, s := range f.rows {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeLedger) Update(_ context.Context, id domain.StudentID, name, email string) (domain.Student, error) {
	if _, ok := f.rows[id]; !ok {
		return domain.Student{}, fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
	}
	s := domain.Student{ID: id, Name: name, Email: email}
	f.rows[id] = s
	return s, nil
}

func (f *fakeLedger) Delete(_ context.Context, id domain.StudentID) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
	}
	delete(f.rows, id)
	return nil
}

func newTestHandler() (*Handler, *fakeLedger) {
	ledger := newFakeLedger()
	return &Handler{Log: log.New(io.Discard, "", 0), Ledger: ledger}, ledger
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domain.APIEnvelope {
	t.Helper()
	var env domain.APIEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestCreateOK(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"id":"100200","name":"Ana","email":"ana@fi.uba.ar"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/students", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	require.NotNil(t, env.Data)
}

func TestCreateDuplicateIs409(t *testing.T) {
	h, ledger := newTestHandler()
	ledger.rows["100200"] = domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"}

	body := `{"id":"100200","name":"Bruno","email":"bruno@fi.uba.ar"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/students", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeConflict, env.Error.Code)
}

func TestCreateBadJSONIs400(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/students", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMissingFieldIs400(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/students", strings.NewReader(`{"id":"100200"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeValidation, env.Error.Code)
}

func TestListEmptyIsEmptyArray(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/students", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"students":[]`)
}

func TestUpdateMissingIs404(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"name":"Bruno","email":"bruno@fi.uba.ar"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/students/999999", strings.NewReader(body))
	req.SetPathValue("id", "999999")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOK(t *testing.T) {
	h, ledger := newTestHandler()
	ledger.rows["100200"] = domain.Student{ID: "100200", Name: "Ana", Email: "ana@fi.uba.ar"}

	req := httptest.NewRequest(http.MethodDelete, "/v1/students/100200", nil)
	req.SetPathValue("id", "100200")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	assert.Empty(t, ledger.rows)
}
