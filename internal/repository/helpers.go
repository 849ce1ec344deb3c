package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ErrNotFound is returned when the store has no document with the given id.
var ErrNotFound = errors.New("record not found")

// maxListSize bounds the bulk ordered read. The review screens load whole
// collections; these stay in the low thousands.
const maxListSize = 10000

type hit struct {
	ID     string          `json:"_id"`
	Source json.RawMessage `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Hits []hit `json:"hits"`
	} `json:"hits"`
}

type getResponse struct {
	ID     string          `json:"_id"`
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}

// allBySortDesc builds a match-all query body ordered descending on field.
func allBySortDesc(field string, size int) io.Reader {
	body, _ := json.Marshal(map[string]any{
		"query": map[string]any{"match_all": map[string]any{}},
		"sort":  []any{map[string]any{field: map[string]any{"order": "desc"}}},
		"size":  size,
	})
	return bytes.NewReader(body)
}

func decodeSearch(res *esapi.Response) ([]hit, error) {
	if res.IsError() {
		return nil, responseError(res)
	}
	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return sr.Hits.Hits, nil
}

func responseError(res *esapi.Response) error {
	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("store error: %s: %s", res.Status(), bytes.TrimSpace(body))
}
