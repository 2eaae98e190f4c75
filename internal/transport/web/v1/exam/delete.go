package exam

import (
	"net/http"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete exam (метаданные + файл)
// @Description Блоб удаляется best-effort: его сбой не отменяет удаление метаданных
// @Description и возвращается в поле warning.
// @Tags        exams
// @Produce     json
// @Param       id path string true "exam id"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/exams/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "exams.delete"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	warn, err := h.Catalog.Delete(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "exam_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "exam_id", id, "warn", warn != nil)
	v1.WriteEnvelope(w, r, http.StatusOK, domain.OkResponse(map[string]bool{id: true}).WithWarning(warn))
}
