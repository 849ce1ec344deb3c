package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gulfstaffing/manpower-review/internal/cache"
	"github.com/gulfstaffing/manpower-review/internal/review"
	"github.com/gulfstaffing/manpower-review/internal/service"
)

const overviewKey = "review:dashboard:overview"
const overviewTTL = 30 * time.Second

type overview struct {
	Submissions review.SubmissionStats `json:"submissions"`
	Payments    review.PaymentStats    `json:"payments"`
	GeneratedAt string                 `json:"generatedAt"`
}

// DashboardHandler serves the combined overview for both screens, cached in
// Redis while nothing mutates.
type DashboardHandler struct {
	subSvc *service.SubmissionService
	paySvc *service.PaymentService
	cache  *cache.Cache
	log    *zap.Logger
}

func NewDashboardHandler(subSvc *service.SubmissionService, paySvc *service.PaymentService, c *cache.Cache, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{subSvc: subSvc, paySvc: paySvc, cache: c, log: log}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		var cached overview
		if ok, err := h.cache.GetJSON(r.Context(), overviewKey, &cached); err == nil && ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	ov := overview{
		Submissions: h.subSvc.Stats(),
		Payments:    h.paySvc.Stats(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(r.Context(), overviewKey, ov, overviewTTL); err != nil {
			h.log.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, ov)
}

// Invalidate drops the cached overview; wired as the services' change hook.
func (h *DashboardHandler) Invalidate() {
	if h.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.cache.Del(ctx, overviewKey); err != nil {
		h.log.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
