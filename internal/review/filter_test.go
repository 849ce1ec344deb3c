package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

func submissionFixtures() []models.Submission {
	return []models.Submission{
		{ID: "s1", FullName: "Rahim Uddin", Email: "rahim@example.com", UserEmail: "agent1@example.com", PassportNumber: "BP1234567", ContactNumber: "+8801711111111", Destination: "Saudi Arabia", ServiceType: "recruitment", Status: models.SubmissionPending},
		{ID: "s2", FullName: "Karim Hossain", Email: "karim@example.com", UserEmail: "agent2@example.com", PassportNumber: "BQ7654321", ContactNumber: "+8801722222222", Destination: "Qatar", ServiceType: "visa-processing", Status: models.SubmissionApproved},
		{ID: "s3", FullName: "Fatema Begum", Email: "fatema@example.com", UserEmail: "agent1@example.com", PassportNumber: "BR1112223", ContactNumber: "+8801733333333", Destination: "Saudi Arabia", ServiceType: "recruitment", Status: models.SubmissionRejected},
	}
}

func TestFilterSubmissions(t *testing.T) {
	list := submissionFixtures()

	tests := []struct {
		name    string
		query   SubmissionQuery
		wantIDs []string
	}{
		{
			name:    "no active predicates returns everything in order",
			query:   SubmissionQuery{},
			wantIDs: []string{"s1", "s2", "s3"},
		},
		{
			name:    "status all is a no-op predicate",
			query:   SubmissionQuery{Status: "all"},
			wantIDs: []string{"s1", "s2", "s3"},
		},
		{
			name:    "status exact equality",
			query:   SubmissionQuery{Status: "approved"},
			wantIDs: []string{"s2"},
		},
		{
			name:    "search is case-insensitive substring over any field",
			query:   SubmissionQuery{Search: "RAHIM"},
			wantIDs: []string{"s1"},
		},
		{
			name:    "search matches passport number",
			query:   SubmissionQuery{Search: "bq765"},
			wantIDs: []string{"s2"},
		},
		{
			name:    "search matches record id",
			query:   SubmissionQuery{Search: "s3"},
			wantIDs: []string{"s3"},
		},
		{
			name:    "predicates AND together",
			query:   SubmissionQuery{Search: "agent1", Destination: "Saudi Arabia", Status: "pending"},
			wantIDs: []string{"s1"},
		},
		{
			name:    "service type filter",
			query:   SubmissionQuery{ServiceType: "visa-processing"},
			wantIDs: []string{"s2"},
		},
		{
			name:    "no match",
			query:   SubmissionQuery{Search: "nonexistent"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSubmissions(list, tt.query)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterPayments(t *testing.T) {
	list := []models.Payment{
		{ID: "p1", UserEmail: "rahim@example.com", TransactionID: "TXN-001", PaymentID: "PAY-88", PaymentMethod: "bkash", ServiceCategory: "recruitment", Status: models.PaymentPending},
		{ID: "p2", UserEmail: "karim@example.com", TransactionID: "TXN-002", PaymentID: "PAY-99", PaymentMethod: "nagad", ServiceCategory: "medical", Status: models.PaymentCompleted},
	}

	tests := []struct {
		name    string
		query   PaymentQuery
		wantIDs []string
	}{
		{"all records", PaymentQuery{}, []string{"p1", "p2"}},
		{"status all no-op", PaymentQuery{Status: "all"}, []string{"p1", "p2"}},
		{"search by transaction id", PaymentQuery{Search: "txn-002"}, []string{"p2"}},
		{"search by payment method", PaymentQuery{Search: "bkash"}, []string{"p1"}},
		{"category and status AND", PaymentQuery{ServiceCategory: "medical", Status: "completed"}, []string{"p2"}},
		{"category mismatch under matching search", PaymentQuery{Search: "karim", ServiceCategory: "recruitment"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPayments(list, tt.query)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
