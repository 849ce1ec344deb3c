package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gulfstaffing/manpower-review/internal/docview"
	"github.com/gulfstaffing/manpower-review/internal/format"
	"github.com/gulfstaffing/manpower-review/internal/models"
	"github.com/gulfstaffing/manpower-review/internal/review"
	"github.com/gulfstaffing/manpower-review/internal/service"
)

type SubmissionHandler struct {
	svc *service.SubmissionService
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := review.SubmissionQuery{
		Search:      r.URL.Query().Get("search"),
		Status:      r.URL.Query().Get("status"),
		Destination: r.URL.Query().Get("destination"),
		ServiceType: r.URL.Query().Get("serviceType"),
	}
	items := h.svc.List(q)
	notice, errMsg := h.svc.Notices()
	writeJSON(w, http.StatusOK, map[string]any{
		"submissions": items,
		"total":       len(items),
		"stats":       h.svc.Stats(),
		"notice":      notice,
		"error":       errMsg,
	})
}

func (h *SubmissionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

// Reload refreshes the snapshot from the store. Safe to call repeatedly.
func (h *SubmissionHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Load(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": h.svc.Stats()})
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"submission":  sub,
		"age":         format.Age(sub.DateOfBirth, time.Now()),
		"submittedAt": format.Timestamp(sub.SubmittedAt),
	})
}

func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status models.SubmissionStatus `json:"status"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":      id,
		"status":  req.Status,
		"message": "Submission status updated",
	})
}

func (h *SubmissionHandler) SetVerified(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Verified bool `json:"verified"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SetVerified(r.Context(), id, req.Verified); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       id,
		"verified": req.Verified,
		"message":  "Submission verification updated",
	})
}

// Delete is irreversible and demands ?confirm=true.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "deletion requires confirm=true")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (h *SubmissionHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	h.svc.DismissError()
	writeJSON(w, http.StatusOK, map[string]bool{"dismissed": true})
}

// Document returns the preview descriptor for the attached document.
func (h *SubmissionHandler) Document(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if sub.Document == nil {
		writeError(w, http.StatusNotFound, docview.ErrNoDocument.Error())
		return
	}
	writeJSON(w, http.StatusOK, docview.Classify(sub.Document))
}

// Download serves the decoded payload with its declared MIME type.
func (h *SubmissionHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	data, err := docview.Payload(sub.Document)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", sub.Document.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sub.Document.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
