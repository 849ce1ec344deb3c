package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gulfstaffing/manpower-review/internal/models"
	"github.com/gulfstaffing/manpower-review/internal/review"
)

type fakePayStore struct {
	records    []models.Payment
	failAll    bool
	failUpdate bool
	updates    []map[string]any
}

func (f *fakePayStore) FindAll(ctx context.Context) ([]models.Payment, error) {
	if f.failAll {
		return nil, errors.New("store unreachable")
	}
	out := make([]models.Payment, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakePayStore) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	for _, r := range f.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakePayStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if f.failUpdate {
		return errors.New("store rejected write")
	}
	f.updates = append(f.updates, fields)
	return nil
}

func newPayService(store *fakePayStore) (*PaymentService, *fakeBus) {
	bus := &fakeBus{}
	return NewPaymentService(store, &fakeAudit{}, bus, zap.NewNop()), bus
}

func payFixtures() []models.Payment {
	return []models.Payment{
		{ID: "p1", UserEmail: "rahim@example.com", Status: models.PaymentPending, Amount: models.NewAmount(100)},
		{ID: "p2", UserEmail: "karim@example.com", Status: models.PaymentCompleted, Verified: true, Amount: models.NewAmount(50)},
		{ID: "p3", UserEmail: "fatema@example.com", Status: models.PaymentProcessing, Amount: models.NewAmount(75)},
	}
}

func TestPaymentLoadAndStats(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)

	require.NoError(t, svc.Load(context.Background()))

	st := svc.Stats()
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, 1, st.Processing)
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 1, st.Verified)
	assert.InDelta(t, 225.0, st.TotalAmount, 0.001)
}

func TestPaymentCompletionForcesVerified(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.UpdateStatus(context.Background(), "p1", models.PaymentCompleted))

	// The remote write carries both fields in the same update.
	require.Len(t, store.updates, 1)
	assert.Equal(t, map[string]any{
		"status":   models.PaymentCompleted,
		"verified": true,
	}, store.updates[0])

	rec, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, rec.Status)
	assert.True(t, rec.Verified)

	st := svc.Stats()
	assert.Equal(t, 2, st.Completed)
	assert.Equal(t, 2, st.Verified)
}

func TestPaymentNonCompletionLeavesVerifiedAlone(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	// false stays false
	require.NoError(t, svc.UpdateStatus(context.Background(), "p1", models.PaymentApproved))
	require.Len(t, store.updates, 1)
	assert.Equal(t, map[string]any{"status": models.PaymentApproved}, store.updates[0])
	rec, _ := svc.Get(context.Background(), "p1")
	assert.False(t, rec.Verified)

	// true stays true: leaving completed never auto-clears the flag
	require.NoError(t, svc.UpdateStatus(context.Background(), "p2", models.PaymentProcessing))
	rec, _ = svc.Get(context.Background(), "p2")
	assert.Equal(t, models.PaymentProcessing, rec.Status)
	assert.True(t, rec.Verified)
}

func TestPaymentVerifyRequiresCompleted(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.SetVerified(context.Background(), "p1", true)
	assert.ErrorIs(t, err, ErrNotCompleted)
	assert.Empty(t, store.updates)
}

func TestPaymentVerifyFlipsOnlyThatField(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	before, err := svc.Get(context.Background(), "p2")
	require.NoError(t, err)

	require.NoError(t, svc.SetVerified(context.Background(), "p2", false))

	after, err := svc.Get(context.Background(), "p2")
	require.NoError(t, err)

	want := *before
	want.Verified = false
	assert.Equal(t, want, *after)

	require.Len(t, store.updates, 1)
	assert.Equal(t, map[string]any{"verified": false}, store.updates[0])
}

func TestPaymentFailedUpdateLeavesStateIntact(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	before := svc.List(review.PaymentQuery{})
	statsBefore := svc.Stats()

	store.failUpdate = true
	err := svc.UpdateStatus(context.Background(), "p1", models.PaymentCompleted)
	require.Error(t, err)

	assert.Equal(t, before, svc.List(review.PaymentQuery{}))
	assert.Equal(t, statsBefore, svc.Stats())

	_, errMsg := svc.Notices()
	assert.Contains(t, errMsg, "store rejected write")
}

func TestPaymentInvalidStatusRejected(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, _ := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.UpdateStatus(context.Background(), "p1", models.PaymentStatus("refunded"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, store.updates)
}

func TestPaymentStatusEventCarriesTransition(t *testing.T) {
	store := &fakePayStore{records: payFixtures()}
	svc, bus := newPayService(store)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.UpdateStatus(context.Background(), "p3", models.PaymentCompleted))

	require.Len(t, bus.events, 1)
	ev := bus.events[0]
	assert.Equal(t, "payment", ev.Entity)
	assert.Equal(t, "p3", ev.RecordID)
	assert.Equal(t, "processing", ev.OldStatus)
	assert.Equal(t, "completed", ev.NewStatus)
	assert.True(t, ev.Verified)
	assert.NotEmpty(t, ev.ID)
}
