package exam

import (
	"net/http"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/exams"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create exam
// @Description multipart: subject_id, date, file (опционально). Файл грузится до вставки метаданных.
// @Tags        exams
// @Accept      multipart/form-data
// @Produce     json
// @Param       subject_id formData string true  "subject id"
// @Param       date       formData string true  "date"
// @Param       file       formData file   false "exam file"
// @Success     200 {object} domain.APIEnvelope{data=domain.Exam}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/exams [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "exams.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
		logx.Error(h.Log, reqID, op, "bad multipart", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	upload, file, err := formFile(r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad file part", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if file != nil {
		defer file.Close()
	}

	exam, err := h.Catalog.Create(r.Context(), exams.CreateParams{
		SubjectID: r.FormValue("subject_id"),
		Date:      r.FormValue("date"),
		File:      upload,
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "exam_id", exam.ID, "has_file", exam.BlobRef != nil)
	v1.WriteOKData(w, r, exam)
}
