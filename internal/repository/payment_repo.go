package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

type PaymentRepo struct {
	es    *elasticsearch.Client
	index string
}

func NewPaymentRepo(es *elasticsearch.Client, index string) *PaymentRepo {
	return &PaymentRepo{es: es, index: index}
}

// FindAll reads the whole collection ordered by submission time, newest first.
func (r *PaymentRepo) FindAll(ctx context.Context) ([]models.Payment, error) {
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(allBySortDesc("submittedAt", maxListSize)),
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer res.Body.Close()

	hits, err := decodeSearch(res)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	payments := make([]models.Payment, 0, len(hits))
	for _, h := range hits {
		var p models.Payment
		if err := json.Unmarshal(h.Source, &p); err != nil {
			continue
		}
		p.ID = h.ID
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *PaymentRepo) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	res, err := r.es.Get(r.index, id, r.es.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError(res)
	}

	var gr getResponse
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode payment %s: %w", id, err)
	}
	if !gr.Found {
		return nil, ErrNotFound
	}

	var p models.Payment
	if err := json.Unmarshal(gr.Source, &p); err != nil {
		return nil, fmt.Errorf("decode payment %s: %w", id, err)
	}
	p.ID = gr.ID
	return &p, nil
}

// UpdateFields writes a partial document update.
func (r *PaymentRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	body, _ := json.Marshal(map[string]any{"doc": fields})
	res, err := r.es.Update(r.index, id, bytes.NewReader(body), r.es.Update.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("update payment %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("update payment %s: %w", id, responseError(res))
	}
	return nil
}
