package http

import (
	"fmt"
	"net/url"
	"strings"

	"finview/internal/core"
)

// maxQueryLength bounds free-text parameters.
const maxQueryLength = 200

type (
	// HomeParams holds the parsed /api/home query.
	HomeParams struct {
		Date string
	}

	// ReportParams holds the parsed /api/reports/category query. Date is nil
	// when absent so the report resolves it to now.
	ReportParams struct {
		Category string
		Date     any
		File     string
	}
)

// ParseHomeParams reads the optional "date" parameter
// (YYYY-MM-DD HH:MM:SS).
func ParseHomeParams(query url.Values) (HomeParams, error) {
	date := sanitizeInput(query.Get("date"))
	if date != "" {
		if _, err := core.ParseReference(date); err != nil {
			return HomeParams{}, err
		}
	}
	return HomeParams{Date: date}, nil
}

// ParseSearchQuery reads the "q" parameter. An empty query is allowed and
// matches every record.
func ParseSearchQuery(query url.Values) (string, error) {
	q := sanitizeInput(query.Get("q"))
	if len([]rune(q)) > maxQueryLength {
		return "", fmt.Errorf("%w: query longer than %d characters", core.ErrInvalidArgument, maxQueryLength)
	}
	return q, nil
}

// ParseReportParams reads "category" (required), "date" and "file".
func ParseReportParams(query url.Values) (ReportParams, error) {
	p := ReportParams{
		Category: sanitizeInput(query.Get("category")),
		File:     sanitizeInput(query.Get("file")),
	}
	if p.Category == "" {
		return ReportParams{}, fmt.Errorf("%w: category is required", core.ErrInvalidArgument)
	}
	if d := sanitizeInput(query.Get("date")); d != "" {
		p.Date = d
	}
	return p, nil
}

// sanitizeInput trims whitespace and removes control characters.
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
