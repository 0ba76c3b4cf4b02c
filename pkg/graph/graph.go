package graph

import (
	"context"
)

// Row is a single result record keyed by the return-clause aliases of
// the executed query.
type Row map[string]any

// Executor defines the read-only query interface over the talent graph.
// Implementations must be safe for concurrent use; the engine issues one
// synchronous round trip per question with no retries.
type Executor interface {
	Execute(ctx context.Context, query string, params map[string]any) ([]Row, error)
	Close(ctx context.Context) error
}

// String returns the named column as a string, or the fallback when the
// column is absent or not a string.
func (r Row) String(key, fallback string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return fallback
}

// Float returns the named column as a float64, accepting the integer
// wire types graph drivers produce for whole numbers.
func (r Row) Float(key string, fallback float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return fallback
}

// Int returns the named column as an int64.
func (r Row) Int(key string, fallback int64) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return fallback
}

// Strings returns the named column as a string slice. Graph drivers
// return collected lists as []any; non-string elements are skipped.
func (r Row) Strings(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
