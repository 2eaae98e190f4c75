package exam

import (
	"net/http"
	"strconv"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// List godoc
// @Summary     List exams
// @Description Конъюнкция точных фильтров subject_id/date/blob_ref + offset-пагинация.
// @Description Порядок — естественный порядок коллекции; конкурентные вставки могут сдвигать страницы.
// @Tags        exams
// @Produce     json
// @Param       subject_id query string false "exact match"
// @Param       date       query string false "exact match"
// @Param       blob_ref   query string false "exact match"
// @Param       page       query int    false "1-based page"
// @Param       page_size  query int    false "page size (default 50)"
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Router      /v1/exams [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "exams.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	q := r.URL.Query()
	var f domain.ExamFilter
	if v := q.Get("subject_id"); v != "" {
		f.SubjectID = &v
	}
	if v := q.Get("date"); v != "" {
		f.Date = &v
	}
	if v := q.Get("blob_ref"); v != "" {
		f.BlobRef = &v
	}

	page := intQuery(q.Get("page"), 1)
	pageSize := intQuery(q.Get("page_size"), 50)

	list, err := h.Catalog.List(r.Context(), f, page, pageSize)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Exam{}
	}
	logx.Info(h.Log, reqID, op, "ok", "count", len(list), "page", page)
	v1.WriteOKData(w, r, map[string]any{"exams": list})
}

func intQuery(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
