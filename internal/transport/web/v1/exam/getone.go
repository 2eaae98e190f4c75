package exam

import (
	"net/http"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// GetOne godoc
// @Summary     Get exam metadata
// @Tags        exams
// @Produce     json
// @Param       id path string true "exam id"
// @Success     200 {object} domain.APIEnvelope{data=domain.Exam}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/exams/{id} [get]
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	const op = "exams.get_one"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	exam, err := h.Catalog.GetByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "get failed", err, "exam_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "exam_id", exam.ID)
	v1.WriteOKData(w, r, exam)
}
