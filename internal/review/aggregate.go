package review

import "github.com/gulfstaffing/manpower-review/internal/models"

// SubmissionStats are the dashboard tiles for the submission screen,
// always computed over the full snapshot, never the filtered view.
type SubmissionStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Verified     int `json:"verified"`
	Destinations int `json:"destinations"`
}

// PaymentStats are the dashboard tiles for the payment screen.
type PaymentStats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Processing  int     `json:"processing"`
	Approved    int     `json:"approved"`
	Completed   int     `json:"completed"`
	Rejected    int     `json:"rejected"`
	Verified    int     `json:"verified"`
	TotalAmount float64 `json:"totalAmount"`
}

func AggregateSubmissions(list []models.Submission) SubmissionStats {
	var st SubmissionStats
	st.Total = len(list)
	seen := make(map[string]struct{})
	for _, s := range list {
		switch s.Status {
		case models.SubmissionPending:
			st.Pending++
		case models.SubmissionApproved:
			st.Approved++
		case models.SubmissionRejected:
			st.Rejected++
		}
		if s.Verified {
			st.Verified++
		}
		if s.Destination != "" {
			seen[s.Destination] = struct{}{}
		}
	}
	st.Destinations = len(seen)
	return st
}

func AggregatePayments(list []models.Payment) PaymentStats {
	var st PaymentStats
	st.Total = len(list)
	for _, p := range list {
		switch p.Status {
		case models.PaymentPending:
			st.Pending++
		case models.PaymentProcessing:
			st.Processing++
		case models.PaymentApproved:
			st.Approved++
		case models.PaymentCompleted:
			st.Completed++
		case models.PaymentRejected:
			st.Rejected++
		}
		if p.Verified {
			st.Verified++
		}
		st.TotalAmount += p.Amount.Value()
	}
	return st
}
