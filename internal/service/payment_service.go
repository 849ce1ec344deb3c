package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gulfstaffing/manpower-review/internal/auth"
	"github.com/gulfstaffing/manpower-review/internal/events"
	"github.com/gulfstaffing/manpower-review/internal/metrics"
	"github.com/gulfstaffing/manpower-review/internal/models"
	"github.com/gulfstaffing/manpower-review/internal/review"
)

// PaymentService owns the payment screen. Same shape as SubmissionService,
// with the payment-specific rules: completing a payment forces verified=true
// in the same write, and the verification toggle is only allowed while the
// payment is completed. Leaving completed never auto-clears verified.
type PaymentService struct {
	store PaymentStore
	audit AuditLog
	bus   Publisher
	log   *zap.Logger

	mu      sync.RWMutex
	records []models.Payment
	stats   review.PaymentStats

	inflight *review.Inflight
	board    *review.Board
	onChange func()
}

func NewPaymentService(store PaymentStore, audit AuditLog, bus Publisher, log *zap.Logger) *PaymentService {
	return &PaymentService{
		store:    store,
		audit:    audit,
		bus:      bus,
		log:      log,
		inflight: review.NewInflight(),
		board:    review.NewBoard(),
	}
}

// OnChange registers a hook fired after every snapshot change.
func (s *PaymentService) OnChange(fn func()) { s.onChange = fn }

// Load replaces the snapshot with a fresh ordered read and recomputes the
// aggregates. On failure the prior snapshot stays as it was.
func (s *PaymentService) Load(ctx context.Context) error {
	records, err := s.store.FindAll(ctx)
	metrics.RecordLoad("payment", err)
	if err != nil {
		s.board.SetError("load payments: " + err.Error())
		s.log.Warn("payment load failed", zap.Error(err))
		return fmt.Errorf("load payments: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.stats = review.AggregatePayments(records)
	s.mu.Unlock()

	s.notifyChange()
	s.log.Info("payments loaded", zap.Int("count", len(records)))
	return nil
}

// List derives the filtered view from the snapshot, preserving order.
func (s *PaymentService) List(q review.PaymentQuery) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return review.FilterPayments(s.records, q)
}

// Stats returns the aggregates over the full snapshot.
func (s *PaymentService) Stats() review.PaymentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Get returns one record, falling back to the store when the snapshot does
// not carry it.
func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	if rec, ok := s.find(id); ok {
		return &rec, nil
	}
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// UpdateStatus writes the new workflow status. Completing a payment forces
// verified=true in the same update; any other target status leaves the
// verified flag exactly as it was.
func (s *PaymentService) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.inflight.Claim(id, "status-update"); err != nil {
		return err
	}
	defer s.inflight.Release(id)

	old, ok := s.find(id)
	if !ok {
		return ErrNotFound
	}

	fields := map[string]any{"status": status}
	if status == models.PaymentCompleted {
		fields["verified"] = true
	}

	err := s.store.UpdateFields(ctx, id, fields)
	metrics.RecordMutation("payment", "status-update", err)
	if err != nil {
		s.board.SetError("update payment status: " + err.Error())
		return fmt.Errorf("update payment status: %w", err)
	}

	s.patch(id, func(rec *models.Payment) {
		rec.Status = status
		if status == models.PaymentCompleted {
			rec.Verified = true
		}
	})
	s.board.SetNotice("Payment status updated")

	ev := events.NewEvent("payment", id, "status-update")
	ev.OldStatus, ev.NewStatus = string(old.Status), string(status)
	ev.Verified = old.Verified || status == models.PaymentCompleted
	s.publish(ctx, ev)
	s.recordAudit(ctx, "status-update", id, fmt.Sprintf("status %s -> %s", old.Status, status))
	return nil
}

// SetVerified flips the attestation flag. Only permitted while the payment's
// current status is completed.
func (s *PaymentService) SetVerified(ctx context.Context, id string, verified bool) error {
	if err := s.inflight.Claim(id, "verify"); err != nil {
		return err
	}
	defer s.inflight.Release(id)

	rec, ok := s.find(id)
	if !ok {
		return ErrNotFound
	}
	if rec.Status != models.PaymentCompleted {
		return ErrNotCompleted
	}

	err := s.store.UpdateFields(ctx, id, map[string]any{"verified": verified})
	metrics.RecordMutation("payment", "verify", err)
	if err != nil {
		s.board.SetError("update payment verification: " + err.Error())
		return fmt.Errorf("update payment verification: %w", err)
	}

	s.patch(id, func(rec *models.Payment) { rec.Verified = verified })
	s.board.SetNotice("Payment verification updated")

	ev := events.NewEvent("payment", id, "verify")
	ev.Verified = verified
	s.publish(ctx, ev)
	s.recordAudit(ctx, "verify", id, fmt.Sprintf("verified=%t", verified))
	return nil
}

// Notices reports the screen's transient confirmation and persistent error.
func (s *PaymentService) Notices() (notice, errMsg string) {
	return s.board.Notice(), s.board.Error()
}

// DismissError clears the persistent error banner.
func (s *PaymentService) DismissError() { s.board.Dismiss() }

func (s *PaymentService) find(id string) (models.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.Payment{}, false
}

func (s *PaymentService) patch(id string, fn func(*models.Payment)) {
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID == id {
			fn(&s.records[i])
			break
		}
	}
	s.stats = review.AggregatePayments(s.records)
	s.mu.Unlock()
	s.notifyChange()
}

func (s *PaymentService) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *PaymentService) publish(ctx context.Context, ev events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		s.log.Warn("event publish failed", zap.String("recordId", ev.RecordID), zap.Error(err))
	}
}

func (s *PaymentService) recordAudit(ctx context.Context, action, recordID, detail string) {
	if s.audit == nil {
		return
	}
	actor := ""
	if claims := auth.GetUser(ctx); claims != nil {
		actor = claims.Email
	}
	entry := &models.AuditEntry{
		ID:       uuid.New().String(),
		Actor:    actor,
		Action:   action,
		Entity:   "payment",
		RecordID: recordID,
		Detail:   detail,
		At:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.log.Warn("audit append failed", zap.String("recordId", recordID), zap.Error(err))
	}
}
