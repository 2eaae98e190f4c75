package exam

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// Download godoc
// @Summary     Download exam file
// @Tags        exams
// @Produce     octet-stream
// @Param       id path string true "exam id"
// @Success     200 {file} []byte
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/exams/{id}/file [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	const op = "exams.download"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	rc, info, err := h.Catalog.DownloadFile(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "download failed", err, "exam_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", info.MIME)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	if info.Filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Filename))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, rc); err != nil {
		// заголовки уже ушли — остаётся только залогировать
		logx.Error(h.Log, reqID, op, "stream aborted", err, "exam_id", id)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "exam_id", id, "blob_id", info.ID, "len", info.Size)
}
