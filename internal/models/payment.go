package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PaymentStatus is the workflow stage of a service payment.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentApproved   PaymentStatus = "approved"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentRejected   PaymentStatus = "rejected"
)

// Valid reports whether s is a member of the closed status enumeration.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentApproved, PaymentCompleted, PaymentRejected:
		return true
	}
	return false
}

// ServiceCategories lists the valid payment service categories.
var ServiceCategories = []string{
	"visa-processing", "recruitment", "medical", "training", "ticketing", "other",
}

// Amount is a monetary value the intake flow stores inconsistently: sometimes
// a JSON number, sometimes a quoted string, sometimes absent. Decoding never
// fails; anything missing or unparseable carries a zero value.
type Amount struct {
	raw   string
	value float64
	valid bool
}

// NewAmount builds a valid Amount, mainly for tests and fixtures.
func NewAmount(v float64) Amount {
	return Amount{value: v, valid: true}
}

// Value returns the numeric amount, zero when absent or unparseable.
func (a Amount) Value() float64 {
	if !a.valid {
		return 0
	}
	return a.value
}

// IsZeroValue reports whether the amount carried no usable number.
func (a Amount) IsZeroValue() bool { return !a.valid }

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*a = Amount{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*a = Amount{}
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*a = Amount{raw: str}
			return nil
		}
		*a = Amount{raw: str, value: v, valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*a = Amount{raw: s}
		return nil
	}
	*a = Amount{value: v, valid: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.valid {
		return json.Marshal(a.value)
	}
	if a.raw != "" {
		return json.Marshal(a.raw)
	}
	return []byte("null"), nil
}

type Payment struct {
	ID              string        `json:"_id,omitempty"`
	UserID          string        `json:"userId"`
	UserEmail       string        `json:"userEmail"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentID       string        `json:"paymentId"`
	TransactionID   string        `json:"transactionId"`
	ServiceCategory string        `json:"serviceCategory"`
	Amount          Amount        `json:"amount"`
	Status          PaymentStatus `json:"status"`
	Verified        bool          `json:"verified"`
	SubmittedAt     string        `json:"submittedAt"`
	TransactionAt   string        `json:"transactionAt,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}
