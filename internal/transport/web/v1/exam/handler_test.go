package exam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/exams"
)

type fakeCatalog struct {
	created  []exams.CreateParams
	exam     domain.Exam
	warn     *domain.CleanupWarning
	err      error
	fileData []byte
	fileInfo domain.BlobInfo
}

func (f *fakeCatalog) Create(_ context.Context, p exams.CreateParams) (domain.Exam, error) {
	if f.err != nil {
		return domain.Exam{}, f.err
	}
	// дочитываем поток как настоящий сторадж
	if p.File != nil {
		data, err := io.ReadAll(p.File.Body)
		if err != nil {
			return domain.Exam{}, err
		}
		f.fileData = data
	}
	f.created = append(f.created, p)
	return f.exam, nil
}

func (f *fakeCatalog) List(context.Context, domain.ExamFilter, int, int) ([]domain.Exam, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Exam{f.exam}, nil
}

func (f *fakeCatalog) GetByID(context.Context, domain.ExamID) (domain.Exam, error) {
	if f.err != nil {
		return domain.Exam{}, f.err
	}
	return f.exam, nil
}

func (f *fakeCatalog) DownloadFile(context.Context, domain.ExamID) (io.ReadCloser, domain.BlobInfo, error) {
	if f.err != nil {
		return nil, domain.BlobInfo{}, f.err
	}
	return io.NopCloser(bytes.NewReader(f.fileData)), f.fileInfo, nil
}

func (f *fakeCatalog) Update(_ context.Context, id domain.ExamID, _ exams.UpdateParams) (domain.Exam, *domain.CleanupWarning, error) {
	if f.err != nil {
		return domain.Exam{}, nil, f.err
	}
	return f.exam, f.warn, nil
}

func (f *fakeCatalog) Delete(context.Context, domain.ExamID) (*domain.CleanupWarning, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.warn, nil
}

func newTestHandler(cat *fakeCatalog) *Handler {
	return &Handler{Log: log.New(io.Discard, "", 0), Catalog: cat}
}

func multipartBody(t *testing.T, fields map[string]string, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mp := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mp.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mp.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mp.Close())
	return &buf, mp.FormDataContentType()
}

func TestCreateMultipartWithFile(t *testing.T) {
	blobRef := "blob-1"
	cat := &fakeCatalog{exam: domain.Exam{ID: "exam-1", SubjectID: "CS101", Date: "2024-01-01", BlobRef: &blobRef}}
	h := newTestHandler(cat)

	body, ct := multipartBody(t, map[string]string{"subject_id": "CS101", "date": "2024-01-01"}, "a.pdf", []byte{1, 2, 3})
	req := httptest.NewRequest(http.MethodPost, "/v1/exams", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cat.created, 1)
	require.NotNil(t, cat.created[0].File)
	assert.Equal(t, "a.pdf", cat.created[0].File.Name)
	assert.Equal(t, []byte{1, 2, 3}, cat.fileData)
	assert.Equal(t, "CS101", cat.created[0].SubjectID)
}

func TestCreateMultipartWithoutFile(t *testing.T) {
	cat := &fakeCatalog{exam: domain.Exam{ID: "exam-1", SubjectID: "CS101", Date: "2024-01-01"}}
	h := newTestHandler(cat)

	body, ct := multipartBody(t, map[string]string{"subject_id": "CS101", "date": "2024-01-01"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/exams", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cat.created, 1)
	assert.Nil(t, cat.created[0].File)
}

func TestCreateNotMultipartIs400(t *testing.T) {
	h := newTestHandler(&fakeCatalog{})

	req := httptest.NewRequest(http.MethodPost, "/v1/exams", bytes.NewReader([]byte("plain")))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOneMissingIs404(t *testing.T) {
	h := newTestHandler(&fakeCatalog{err: fmt.Errorf("exam x: %w", domain.ErrNotFound)})

	req := httptest.NewRequest(http.MethodGet, "/v1/exams/x", nil)
	req.SetPathValue("id", "x")
	rec := httptest.NewRecorder()
	h.GetOne(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateWarningSurfacesInEnvelope(t *testing.T) {
	blobRef := "blob-2"
	cat := &fakeCatalog{
		exam: domain.Exam{ID: "exam-1", SubjectID: "CS101", Date: "2024-01-01", BlobRef: &blobRef},
		warn: &domain.CleanupWarning{BlobID: "blob-1", Err: fmt.Errorf("%w: timeout", domain.ErrStore)},
	}
	h := newTestHandler(cat)

	body, ct := multipartBody(t, nil, "b.pdf", []byte{4, 5})
	req := httptest.NewRequest(http.MethodPut, "/v1/exams/exam-1", body)
	req.Header.Set("Content-Type", ct)
	req.SetPathValue("id", "exam-1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	// warning не делает операцию ошибкой
	require.Equal(t, http.StatusOK, rec.Code)
	var env domain.APIEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Nil(t, env.Error)
	require.NotNil(t, env.Warning)
	assert.Contains(t, env.Warning.Text, "blob-1")
}

func TestDeleteWarningSurfacesInEnvelope(t *testing.T) {
	cat := &fakeCatalog{warn: &domain.CleanupWarning{BlobID: "blob-1", Err: fmt.Errorf("%w: timeout", domain.ErrStore)}}
	h := newTestHandler(cat)

	req := httptest.NewRequest(http.MethodDelete, "/v1/exams/exam-1", nil)
	req.SetPathValue("id", "exam-1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env domain.APIEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Nil(t, env.Error)
	require.NotNil(t, env.Warning)
}

func TestDownloadStreamsFile(t *testing.T) {
	cat := &fakeCatalog{
		fileData: []byte{1, 2, 3},
		fileInfo: domain.BlobInfo{ID: "blob-1", Filename: "a.pdf", MIME: "application/pdf", Size: 3},
	}
	h := newTestHandler(cat)

	req := httptest.NewRequest(http.MethodGet, "/v1/exams/exam-1/file", nil)
	req.SetPathValue("id", "exam-1")
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "a.pdf")
	assert.Equal(t, []byte{1, 2, 3}, rec.Body.Bytes())
}

func TestDownloadMissingIs404(t *testing.T) {
	h := newTestHandler(&fakeCatalog{err: fmt.Errorf("exam x: %w", domain.ErrNotFound)})

	req := httptest.NewRequest(http.MethodGet, "/v1/exams/x/file", nil)
	req.SetPathValue("id", "x")
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
