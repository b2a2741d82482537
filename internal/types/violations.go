// Package types provides type definitions for citation records and formatting results.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single failed citation check
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Field    string `json:"field,omitempty"` // Record field the check is about
}

// Violations represents a collection of failed checks
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == "error" {
			return true
		}
	}
	return false
}
