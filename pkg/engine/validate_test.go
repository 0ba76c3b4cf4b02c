package engine

import (
	"errors"
	"testing"
)

func TestValidateReadOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		blocked bool
	}{
		{
			name:  "plain match",
			query: "MATCH (p:Person)\nRETURN count(p) AS result",
		},
		{
			name:  "with prefix",
			query: "WITH 1 AS x\nRETURN x",
		},
		{
			name:  "leading whitespace tolerated",
			query: "  \n MATCH (p:Person) RETURN p.name",
		},
		{
			name:    "empty",
			query:   "   ",
			blocked: true,
		},
		{
			name:    "mutation via create",
			query:   "CREATE (p:Person {name: 'x'})",
			blocked: true,
		},
		{
			name:    "mutation smuggled after match",
			query:   "MATCH (p:Person) DELETE p",
			blocked: true,
		},
		{
			name:    "lowercase mutation",
			query:   "match (p:Person) set p.name = 'x' return p",
			blocked: true,
		},
		{
			name:    "detach delete",
			query:   "MATCH (p:Person) DETACH DELETE p",
			blocked: true,
		},
		{
			name:    "procedure invocation",
			query:   "MATCH (p) CALL db.labels() YIELD label RETURN label",
			blocked: true,
		},
		{
			name:    "apoc namespace",
			query:   "RETURN apoc.version()",
			blocked: true,
		},
		{
			name:    "bulk import",
			query:   "MATCH (p) LOAD CSV FROM 'file:///x' AS line RETURN line",
			blocked: true,
		},
		{
			name:    "unknown opening clause",
			query:   "UNWIND [1,2,3] AS x RETURN x",
			blocked: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateReadOnly(tc.query)
			if tc.blocked && err == nil {
				t.Errorf("ValidateReadOnly(%q) = nil, want blocked", tc.query)
			}
			if !tc.blocked && err != nil {
				t.Errorf("ValidateReadOnly(%q) = %v, want nil", tc.query, err)
			}
			if tc.blocked && err != nil {
				var unsafeErr *UnsafeQueryError
				if !errors.As(err, &unsafeErr) {
					t.Errorf("error type = %T, want *UnsafeQueryError", err)
				}
			}
		})
	}
}
