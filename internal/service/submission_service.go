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

// SubmissionService owns the submission screen: an in-memory snapshot of the
// collection, its derived aggregates, and the mutations that keep both in
// step with the remote store. The snapshot only changes after a confirmed
// remote write; a failed write leaves it untouched.
type SubmissionService struct {
	store SubmissionStore
	audit AuditLog
	bus   Publisher
	log   *zap.Logger

	mu      sync.RWMutex
	records []models.Submission
	stats   review.SubmissionStats

	inflight *review.Inflight
	board    *review.Board
	onChange func()
}

func NewSubmissionService(store SubmissionStore, audit AuditLog, bus Publisher, log *zap.Logger) *SubmissionService {
	return &SubmissionService{
		store:    store,
		audit:    audit,
		bus:      bus,
		log:      log,
		inflight: review.NewInflight(),
		board:    review.NewBoard(),
	}
}

// OnChange registers a hook fired after every snapshot change, used to
// invalidate the dashboard cache.
func (s *SubmissionService) OnChange(fn func()) { s.onChange = fn }

// Load replaces the snapshot with a fresh ordered read of the collection and
// recomputes aggregates. On failure the prior snapshot stays as it was.
func (s *SubmissionService) Load(ctx context.Context) error {
	records, err := s.store.FindAll(ctx)
	metrics.RecordLoad("submission", err)
	if err != nil {
		s.board.SetError("load submissions: " + err.Error())
		s.log.Warn("submission load failed", zap.Error(err))
		return fmt.Errorf("load submissions: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.stats = review.AggregateSubmissions(records)
	s.mu.Unlock()

	s.notifyChange()
	s.log.Info("submissions loaded", zap.Int("count", len(records)))
	return nil
}

// List derives the filtered view from the snapshot, preserving order.
func (s *SubmissionService) List(q review.SubmissionQuery) []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return review.FilterSubmissions(s.records, q)
}

// Stats returns the aggregates over the full snapshot.
func (s *SubmissionService) Stats() review.SubmissionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Get returns one record, falling back to the store when the snapshot does
// not carry it (deep links before the first load).
func (s *SubmissionService) Get(ctx context.Context, id string) (*models.Submission, error) {
	if rec, ok := s.find(id); ok {
		return &rec, nil
	}
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// UpdateStatus writes the new workflow status and patches the snapshot on
// confirmed success.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error {
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

	err := s.store.UpdateFields(ctx, id, map[string]any{"status": status})
	metrics.RecordMutation("submission", "status-update", err)
	if err != nil {
		s.board.SetError("update submission status: " + err.Error())
		return fmt.Errorf("update submission status: %w", err)
	}

	s.patch(id, func(rec *models.Submission) { rec.Status = status })
	s.board.SetNotice("Submission status updated")

	ev := events.NewEvent("submission", id, "status-update")
	ev.OldStatus, ev.NewStatus = string(old.Status), string(status)
	s.publish(ctx, ev)
	s.recordAudit(ctx, "status-update", id, fmt.Sprintf("status %s -> %s", old.Status, status))
	return nil
}

// SetVerified writes the reviewer attestation flag.
func (s *SubmissionService) SetVerified(ctx context.Context, id string, verified bool) error {
	if err := s.inflight.Claim(id, "verify"); err != nil {
		return err
	}
	defer s.inflight.Release(id)

	if _, ok := s.find(id); !ok {
		return ErrNotFound
	}

	err := s.store.UpdateFields(ctx, id, map[string]any{"verified": verified})
	metrics.RecordMutation("submission", "verify", err)
	if err != nil {
		s.board.SetError("update submission verification: " + err.Error())
		return fmt.Errorf("update submission verification: %w", err)
	}

	s.patch(id, func(rec *models.Submission) { rec.Verified = verified })
	s.board.SetNotice("Submission verification updated")

	ev := events.NewEvent("submission", id, "verify")
	ev.Verified = verified
	s.publish(ctx, ev)
	s.recordAudit(ctx, "verify", id, fmt.Sprintf("verified=%t", verified))
	return nil
}

// Delete removes the record from the store and then from the snapshot.
// Irreversible; the HTTP layer demands explicit confirmation first.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	if err := s.inflight.Claim(id, "delete"); err != nil {
		return err
	}
	defer s.inflight.Release(id)

	if _, ok := s.find(id); !ok {
		return ErrNotFound
	}

	err := s.store.Delete(ctx, id)
	metrics.RecordMutation("submission", "delete", err)
	if err != nil {
		s.board.SetError("delete submission: " + err.Error())
		return fmt.Errorf("delete submission: %w", err)
	}

	s.remove(id)
	s.board.SetNotice("Submission deleted")

	s.publish(ctx, events.NewEvent("submission", id, "delete"))
	s.recordAudit(ctx, "delete", id, "")
	return nil
}

// Notices reports the screen's transient confirmation and persistent error.
func (s *SubmissionService) Notices() (notice, errMsg string) {
	return s.board.Notice(), s.board.Error()
}

// DismissError clears the persistent error banner.
func (s *SubmissionService) DismissError() { s.board.Dismiss() }

func (s *SubmissionService) find(id string) (models.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.Submission{}, false
}

func (s *SubmissionService) patch(id string, fn func(*models.Submission)) {
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID == id {
			fn(&s.records[i])
			break
		}
	}
	s.stats = review.AggregateSubmissions(s.records)
	s.mu.Unlock()
	s.notifyChange()
}

func (s *SubmissionService) remove(id string) {
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.stats = review.AggregateSubmissions(s.records)
	s.mu.Unlock()
	s.notifyChange()
}

func (s *SubmissionService) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *SubmissionService) publish(ctx context.Context, ev events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		s.log.Warn("event publish failed", zap.String("recordId", ev.RecordID), zap.Error(err))
	}
}

func (s *SubmissionService) recordAudit(ctx context.Context, action, recordID, detail string) {
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
		Entity:   "submission",
		RecordID: recordID,
		Detail:   detail,
		At:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.log.Warn("audit append failed", zap.String("recordId", recordID), zap.Error(err))
	}
}
