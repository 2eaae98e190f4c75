package exam

import (
	"net/http"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/exams"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// Update godoc
// @Summary     Update exam (partial)
// @Description multipart: subject_id/date/file — все опциональны, пропущенные поля не меняются.
// @Description Новый файл грузится до удаления старого; сбой удаления старого блоба
// @Description не валит операцию и возвращается в поле warning.
// @Tags        exams
// @Accept      multipart/form-data
// @Produce     json
// @Param       id         path     string true  "exam id"
// @Param       subject_id formData string false "subject id"
// @Param       date       formData string false "date"
// @Param       file       formData file   false "replacement file"
// @Success     200 {object} domain.APIEnvelope{data=domain.Exam}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/exams/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "exams.update"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
		logx.Error(h.Log, reqID, op, "bad multipart", err, "exam_id", id)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	upload, file, err := formFile(r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad file part", err, "exam_id", id)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if file != nil {
		defer file.Close()
	}

	// отсутствие ключа в форме — «не трогать», а не «затереть пустым»
	p := exams.UpdateParams{File: upload}
	if vs, ok := r.MultipartForm.Value["subject_id"]; ok && len(vs) > 0 {
		p.SubjectID = &vs[0]
	}
	if vs, ok := r.MultipartForm.Value["date"]; ok && len(vs) > 0 {
		p.Date = &vs[0]
	}

	exam, warn, err := h.Catalog.Update(r.Context(), id, p)
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "exam_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "exam_id", exam.ID, "warn", warn != nil)
	v1.WriteEnvelope(w, r, http.StatusOK, domain.OkData(exam).WithWarning(warn))
}
