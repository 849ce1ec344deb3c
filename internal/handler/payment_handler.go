package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gulfstaffing/manpower-review/internal/format"
	"github.com/gulfstaffing/manpower-review/internal/models"
	"github.com/gulfstaffing/manpower-review/internal/review"
	"github.com/gulfstaffing/manpower-review/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := review.PaymentQuery{
		Search:          r.URL.Query().Get("search"),
		Status:          r.URL.Query().Get("status"),
		ServiceCategory: r.URL.Query().Get("serviceCategory"),
	}
	items := h.svc.List(q)
	notice, errMsg := h.svc.Notices()
	writeJSON(w, http.StatusOK, map[string]any{
		"payments": items,
		"total":    len(items),
		"stats":    h.svc.Stats(),
		"notice":   notice,
		"error":    errMsg,
	})
}

func (h *PaymentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

// Reload refreshes the snapshot from the store. Safe to call repeatedly.
func (h *PaymentHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Load(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": h.svc.Stats()})
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"payment":     p,
		"amount":      format.Currency(p.Amount, ""),
		"submittedAt": format.Timestamp(p.SubmittedAt),
	})
}

func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status models.PaymentStatus `json:"status"`
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
		"message": "Payment status updated",
	})
}

func (h *PaymentHandler) SetVerified(w http.ResponseWriter, r *http.Request) {
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
		"message":  "Payment verification updated",
	})
}

func (h *PaymentHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	h.svc.DismissError()
	writeJSON(w, http.StatusOK, map[string]bool{"dismissed": true})
}
