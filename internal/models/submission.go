package models

// SubmissionStatus is the workflow stage of a manpower submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Valid reports whether s is a member of the closed status enumeration.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

type Submission struct {
	ID             string           `json:"_id,omitempty"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	UserEmail      string           `json:"userEmail"`
	PassportNumber string           `json:"passportNumber"`
	Nationality    string           `json:"nationality"`
	DateOfBirth    string           `json:"dateOfBirth,omitempty"`
	ContactNumber  string           `json:"contactNumber"`
	Destination    string           `json:"destination"`
	ServiceType    string           `json:"serviceType"`
	Status         SubmissionStatus `json:"status"`
	Verified       bool             `json:"verified"`
	SubmittedAt    string           `json:"submittedAt"`
	Notes          string           `json:"notes,omitempty"`
	Document       *Document        `json:"document,omitempty"`
}
