package exam

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/exams"
)

// Catalog — порт к каталогу экзаменов
type Catalog interface {
	Create(ctx context.Context, p exams.CreateParams) (domain.Exam, error)
	List(ctx context.Context, f domain.ExamFilter, page, pageSize int) ([]domain.Exam, error)
	GetByID(ctx context.Context, id domain.ExamID) (domain.Exam, error)
	DownloadFile(ctx context.Context, id domain.ExamID) (io.ReadCloser, domain.BlobInfo, error)
	Update(ctx context.Context, id domain.ExamID, p exams.UpdateParams) (domain.Exam, *domain.CleanupWarning, error)
	Delete(ctx context.Context, id domain.ExamID) (*domain.CleanupWarning, error)
}

type Handler struct {
	Log     *log.Logger
	Catalog Catalog
}

const maxMultipartMem = 32 << 20 // 32MB

// файл из multipart-формы; закрывает ресурс вызывающий
func formFile(r *http.Request) (*domain.FileUpload, multipart.File, error) {
	file, hdr, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	mime := hdr.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}
	return &domain.FileUpload{Name: hdr.Filename, MIME: mime, Body: file}, file, nil
}
