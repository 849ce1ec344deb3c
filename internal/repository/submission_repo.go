package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

type SubmissionRepo struct {
	es    *elasticsearch.Client
	index string
}

func NewSubmissionRepo(es *elasticsearch.Client, index string) *SubmissionRepo {
	return &SubmissionRepo{es: es, index: index}
}

// FindAll reads the whole collection ordered by submission time, newest
// first. Documents that fail to decode are skipped rather than failing the
// whole load.
func (r *SubmissionRepo) FindAll(ctx context.Context) ([]models.Submission, error) {
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(allBySortDesc("submittedAt", maxListSize)),
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer res.Body.Close()

	hits, err := decodeSearch(res)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	subs := make([]models.Submission, 0, len(hits))
	for _, h := range hits {
		var s models.Submission
		if err := json.Unmarshal(h.Source, &s); err != nil {
			continue
		}
		s.ID = h.ID
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *SubmissionRepo) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	res, err := r.es.Get(r.index, id, r.es.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError(res)
	}

	var gr getResponse
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", id, err)
	}
	if !gr.Found {
		return nil, ErrNotFound
	}

	var s models.Submission
	if err := json.Unmarshal(gr.Source, &s); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", id, err)
	}
	s.ID = gr.ID
	return &s, nil
}

// UpdateFields writes a partial document update.
func (r *SubmissionRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	body, _ := json.Marshal(map[string]any{"doc": fields})
	res, err := r.es.Update(r.index, id, bytes.NewReader(body), r.es.Update.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("update submission %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("update submission %s: %w", id, responseError(res))
	}
	return nil
}

func (r *SubmissionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.es.Delete(r.index, id, r.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete submission %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("delete submission %s: %w", id, responseError(res))
	}
	return nil
}
