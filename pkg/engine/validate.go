package engine

import (
	"fmt"
	"strings"
)

// readOnlyPrefixes are the only clauses a compiled query may open with.
var readOnlyPrefixes = []string{"match", "with", "return"}

// blockedFragments is the mutation and procedure blocklist. Matching is
// a plain case-insensitive substring scan, so compiled queries must not
// spell any of these even in identifiers.
var blockedFragments = []string{
	"create",
	"merge",
	"set",
	"delete",
	"detach",
	"drop",
	"remove",
	"call",
	"load csv",
	"apoc.",
	"gds.",
	"periodic",
	"foreach",
	"dbms",
	"admin",
	"schema",
}

// ValidateReadOnly is the safety gate every compiled query passes
// through before execution. It never rewrites a query: anything
// suspicious is rejected outright.
func ValidateReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &UnsafeQueryError{Reason: "empty query"}
	}

	lower := strings.ToLower(trimmed)

	allowed := false
	for _, prefix := range readOnlyPrefixes {
		if strings.HasPrefix(lower, prefix) {
			allowed = true
			break
		}
	}
	if !allowed {
		return &UnsafeQueryError{Reason: fmt.Sprintf("query must open with one of %v", readOnlyPrefixes)}
	}

	for _, fragment := range blockedFragments {
		if strings.Contains(lower, fragment) {
			return &UnsafeQueryError{Reason: fmt.Sprintf("blocked fragment %q", strings.TrimSpace(fragment))}
		}
	}
	return nil
}
