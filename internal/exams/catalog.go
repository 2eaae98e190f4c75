// Package exams держит контракт консистентности между документом
// экзамена и его блобом. Порядок шагов в Create/Update/Delete ограничивает
// окно рассинхрона и менять его нельзя:
//
//   - Create: сначала upload, потом insert. Упавший upload не оставляет
//     записи с висячей ссылкой; упавший insert после upload оставляет
//     осиротевший блоб — логируем, не фатально.
//   - Update: сначала upload нового блоба, затем best-effort удаление
//     старого, затем запись метаданных. Старый блоб не удаляется, пока
//     замена не лежит в сторе.
//   - Delete: best-effort удаление блоба, затем удаление метаданных.
//     Гарантируется только удаление метаданных («metadata wins»).
//
// Сбои best-effort шагов не прячем: наружу уходит CleanupWarning.
package exams

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

type Catalog struct {
	log     *log.Logger
	repo    domain.ExamsRepo
	storage domain.BlobStorage
}

func New(logger *log.Logger, repo domain.ExamsRepo, storage domain.BlobStorage) *Catalog {
	return &Catalog{log: logger, repo: repo, storage: storage}
}

type CreateParams struct {
	SubjectID string
	Date      string
	File      *domain.FileUpload // nil — экзамен без файла
}

// Поля nil — оставить как есть (partial update, не «затереть пустым»)
type UpdateParams struct {
	SubjectID *string
	Date      *string
	File      *domain.FileUpload
}

func (c *Catalog) Create(ctx context.Context, p CreateParams) (domain.Exam, error) {
	if p.SubjectID == "" {
		return domain.Exam{}, fmt.Errorf("subject_id is required: %w", domain.ErrValidation)
	}
	if p.Date == "" {
		return domain.Exam{}, fmt.Errorf("date is required: %w", domain.ErrValidation)
	}

	var blobRef *domain.BlobID
	if p.File != nil {
		bi, err := c.storage.Upload(ctx, p.File.Name, p.File.MIME, p.File.Body)
		if err != nil {
			return domain.Exam{}, fmt.Errorf("upload file: %w", err)
		}
		blobRef = &bi.ID
	}

	exam, err := c.repo.InsertExam(ctx, domain.Exam{
		SubjectID: p.SubjectID,
		Date:      p.Date,
		BlobRef:   blobRef,
	})
	if err != nil {
		if blobRef != nil {
			// блоб уже загружен, записи нет — осиротевший блоб,
			// разгребается out-of-band
			c.log.Printf("Create: insert failed, blob %s orphaned: %v", *blobRef, err)
		}
		return domain.Exam{}, fmt.Errorf("insert exam: %w", err)
	}
	return exam, nil
}

func (c *Catalog) List(ctx context.Context, f domain.ExamFilter, page, pageSize int) ([]domain.Exam, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 50
	}
	skip := int64(page-1) * int64(pageSize)
	return c.repo.ListExams(ctx, f, skip, int64(pageSize))
}

func (c *Catalog) GetByID(ctx context.Context, id domain.ExamID) (domain.Exam, error) {
	return c.repo.ExamByID(ctx, id)
}

// DownloadFile отдаёт поток файла экзамена.
// ErrNotFound — если записи нет или у неё нет файла.
func (c *Catalog) DownloadFile(ctx context.Context, id domain.ExamID) (io.ReadCloser, domain.BlobInfo, error) {
	exam, err := c.repo.ExamByID(ctx, id)
	if err != nil {
		return nil, domain.BlobInfo{}, err
	}
	if exam.BlobRef == nil {
		return nil, domain.BlobInfo{}, fmt.Errorf("exam %s has no file: %w", id, domain.ErrNotFound)
	}
	return c.storage.Download(ctx, *exam.BlobRef)
}

func (c *Catalog) Update(ctx context.Context, id domain.ExamID, p UpdateParams) (domain.Exam, *domain.CleanupWarning, error) {
	cur, err := c.repo.ExamByID(ctx, id)
	if err != nil {
		return domain.Exam{}, nil, err
	}

	subjectID := cur.SubjectID
	if p.SubjectID != nil {
		subjectID = *p.SubjectID
	}
	date := cur.Date
	if p.Date != nil {
		date = *p.Date
	}

	blobRef := cur.BlobRef
	var warn *domain.CleanupWarning
	if p.File != nil {
		// Сначала грузим замену: при ошибке запись и старый блоб не тронуты
		bi, err := c.storage.Upload(ctx, p.File.Name, p.File.MIME, p.File.Body)
		if err != nil {
			return domain.Exam{}, nil, fmt.Errorf("upload replacement: %w", err)
		}

		// Замена лежит — старый блоб можно удалять. Сбой не фатален:
		// старый блоб остаётся сиротой, о чём сообщаем наружу.
		if cur.BlobRef != nil {
			if err := c.storage.Delete(ctx, *cur.BlobRef); err != nil && !errors.Is(err, domain.ErrNotFound) {
				c.log.Printf("Update: stale blob %s not deleted: %v", *cur.BlobRef, err)
				warn = &domain.CleanupWarning{BlobID: *cur.BlobRef, Err: err}
			}
		}
		blobRef = &bi.ID
	}

	if err := c.repo.ReplaceExam(ctx, id, subjectID, date, blobRef); err != nil {
		if p.File != nil {
			c.log.Printf("Update: replace failed, blob %s orphaned: %v", *blobRef, err)
		}
		return domain.Exam{}, warn, fmt.Errorf("replace exam: %w", err)
	}

	return domain.Exam{ID: id, SubjectID: subjectID, Date: date, BlobRef: blobRef}, warn, nil
}

// Delete удаляет запись и её блоб. Сбой удаления блоба не прерывает
// операцию — метаданные убираем в любом случае.
func (c *Catalog) Delete(ctx context.Context, id domain.ExamID) (*domain.CleanupWarning, error) {
	cur, err := c.repo.ExamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var warn *domain.CleanupWarning
	if cur.BlobRef != nil {
		if err := c.storage.Delete(ctx, *cur.BlobRef); err != nil && !errors.Is(err, domain.ErrNotFound) {
			c.log.Printf("Delete: blob %s not deleted: %v", *cur.BlobRef, err)
			warn = &domain.CleanupWarning{BlobID: *cur.BlobRef, Err: err}
		}
	}

	if err := c.repo.DeleteExam(ctx, id); err != nil {
		return warn, fmt.Errorf("delete exam: %w", err)
	}
	return warn, nil
}
