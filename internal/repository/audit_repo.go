package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

type AuditRepo struct {
	es    *elasticsearch.Client
	index string
}

func NewAuditRepo(es *elasticsearch.Client, index string) *AuditRepo {
	return &AuditRepo{es: es, index: index}
}

// Append stores one audit entry under its own id.
func (r *AuditRepo) Append(ctx context.Context, e *models.AuditEntry) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	res, err := r.es.Index(
		r.index,
		bytes.NewReader(body),
		r.es.Index.WithDocumentID(e.ID),
		r.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("append audit entry: %w", responseError(res))
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > maxListSize {
		limit = 100
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(allBySortDesc("at", limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer res.Body.Close()

	hits, err := decodeSearch(res)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	entries := make([]models.AuditEntry, 0, len(hits))
	for _, h := range hits {
		var e models.AuditEntry
		if err := json.Unmarshal(h.Source, &e); err != nil {
			continue
		}
		e.ID = h.ID
		entries = append(entries, e)
	}
	return entries, nil
}
