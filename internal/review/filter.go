package review

import (
	"strings"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

// FilterAll is the categorical filter value that matches every record.
const FilterAll = "all"

type SubmissionQuery struct {
	Search      string
	Status      string
	Destination string
	ServiceType string
}

type PaymentQuery struct {
	Search          string
	Status          string
	ServiceCategory string
}

// FilterSubmissions returns the order-preserving subsequence of list matching
// every active predicate. The free-text term is a case-insensitive substring
// match, OR-ed across the searchable fields; categorical predicates are exact
// equality, with "" or "all" acting as a no-op.
func FilterSubmissions(list []models.Submission, q SubmissionQuery) []models.Submission {
	out := make([]models.Submission, 0, len(list))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, s := range list {
		if term != "" && !anyContains(term,
			s.FullName, s.Email, s.UserEmail, s.PassportNumber, s.ID, s.ContactNumber) {
			continue
		}
		if !categorical(string(s.Status), q.Status) {
			continue
		}
		if !categorical(s.Destination, q.Destination) {
			continue
		}
		if !categorical(s.ServiceType, q.ServiceType) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterPayments applies the same predicate rules to payment records.
func FilterPayments(list []models.Payment, q PaymentQuery) []models.Payment {
	out := make([]models.Payment, 0, len(list))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range list {
		if term != "" && !anyContains(term,
			p.UserEmail, p.TransactionID, p.PaymentID, p.PaymentMethod) {
			continue
		}
		if !categorical(string(p.Status), q.Status) {
			continue
		}
		if !categorical(p.ServiceCategory, q.ServiceCategory) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func anyContains(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func categorical(value, filter string) bool {
	return filter == "" || filter == FilterAll || value == filter
}
