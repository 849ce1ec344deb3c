package service

import (
	"context"

	"github.com/gulfstaffing/manpower-review/internal/events"
	"github.com/gulfstaffing/manpower-review/internal/models"
)

// SubmissionStore is the slice of the remote document store the submission
// screen needs: bulk ordered read, single-document update and delete.
type SubmissionStore interface {
	FindAll(ctx context.Context) ([]models.Submission, error)
	FindByID(ctx context.Context, id string) (*models.Submission, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// PaymentStore is the payment screen's slice of the store.
type PaymentStore interface {
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

// Publisher forwards confirmed mutations to the message bus. May be nil when
// no bus is configured.
type Publisher interface {
	Publish(ctx context.Context, ev events.Event) error
}

// AuditLog appends mutation records. May be nil.
type AuditLog interface {
	Append(ctx context.Context, e *models.AuditEntry) error
}
