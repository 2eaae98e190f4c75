package students

import (
	"encoding/json"
	"net/http"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/logx"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/mw"
	v1 "github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create student
// @Description JSON {id,name,email}; id задаёт вызывающий. 409 при дубликате id.
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       student body domain.Student true "student"
// @Success     200 {object} domain.APIEnvelope{data=domain.Student}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Router      /v1/students [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "students.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var in domain.Student
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	s, err := h.Ledger.Create(r.Context(), in)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "student_id", in.ID)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "student_id", s.ID)
	v1.WriteOKData(w, r, s)
}

// List godoc
// @Summary     List students
// @Description Все строки без фильтра, в естественном порядке стора
// @Tags        students
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Router      /v1/students [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "students.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	list, err := h.Ledger.List(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Student{}
	}
	logx.Info(h.Log, reqID, op, "ok", "count", len(list))
	v1.WriteOKData(w, r, map[string]any{"students": list})
}

// Update godoc
// @Summary     Update student (name/email, id неизменяем)
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id path string true "student id"
// @Param       student body object true "JSON {name,email}"
// @Success     200 {object} domain.APIEnvelope{data=domain.Student}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/students/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "students.update"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err, "student_id", id)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	s, err := h.Ledger.Update(r.Context(), id, in.Name, in.Email)
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "student_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "student_id", s.ID)
	v1.WriteOKData(w, r, s)
}

// Delete godoc
// @Summary     Delete student
// @Tags        students
// @Produce     json
// @Param       id path string true "student id"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/students/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "students.delete"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	if err := h.Ledger.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "student_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "student_id", id)
	v1.WriteOKResponse(w, r, map[string]bool{id: true})
}
