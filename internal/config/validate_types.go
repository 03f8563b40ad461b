package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a profile field.
type Issue struct {
	Field   string
	Message string
}

func (issue Issue) String() string {
	return fmt.Sprintf("%s: %s", issue.Field, issue.Message)
}

// ValidationError aggregates profile validation issues.
type ValidationError struct {
	Path   string
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues)+1)
	if err.Path != "" {
		lines = append(lines, fmt.Sprintf("%s:", err.Path))
	}
	for _, issue := range err.Issues {
		lines = append(lines, issue.String())
	}
	return strings.Join(lines, "\n")
}
