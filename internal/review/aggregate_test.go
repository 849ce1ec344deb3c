package review

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

func TestAggregateSubmissions(t *testing.T) {
	list := []models.Submission{
		{ID: "a", Status: models.SubmissionPending, Destination: "Saudi Arabia"},
		{ID: "b", Status: models.SubmissionPending, Destination: "Qatar", Verified: true},
		{ID: "c", Status: models.SubmissionApproved, Destination: "Saudi Arabia", Verified: true},
		{ID: "d", Status: models.SubmissionRejected, Destination: "Oman"},
		{ID: "e", Status: models.SubmissionApproved, Destination: "Qatar"},
	}

	st := AggregateSubmissions(list)

	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 2, st.Pending)
	assert.Equal(t, 2, st.Approved)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, 2, st.Verified)
	assert.Equal(t, 3, st.Destinations)
}

func TestAggregateSubmissionsEmpty(t *testing.T) {
	st := AggregateSubmissions(nil)
	assert.Equal(t, SubmissionStats{}, st)
}

func TestAggregatePaymentsAmountCoercion(t *testing.T) {
	// Amounts arrive as strings, numbers, nulls and garbage; only the
	// parseable ones count toward the total.
	raw := `[
		{"_id":"p1","status":"pending","amount":"100"},
		{"_id":"p2","status":"completed","verified":true,"amount":50},
		{"_id":"p3","status":"processing","amount":null},
		{"_id":"p4","status":"rejected","amount":"abc"}
	]`
	var list []models.Payment
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	st := AggregatePayments(list)

	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, 1, st.Processing)
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, 0, st.Approved)
	assert.Equal(t, 1, st.Verified)
	assert.InDelta(t, 150.0, st.TotalAmount, 0.001)
}

func TestAggregatePaymentsIgnoresFilters(t *testing.T) {
	// Aggregation always runs over the full list; filtering the view first
	// must not change what callers compute stats from.
	list := []models.Payment{
		{ID: "p1", Status: models.PaymentPending, Amount: models.NewAmount(10)},
		{ID: "p2", Status: models.PaymentCompleted, Amount: models.NewAmount(20)},
	}
	filtered := FilterPayments(list, PaymentQuery{Status: "completed"})
	assert.Len(t, filtered, 1)

	st := AggregatePayments(list)
	assert.Equal(t, 2, st.Total)
	assert.InDelta(t, 30.0, st.TotalAmount, 0.001)
}
