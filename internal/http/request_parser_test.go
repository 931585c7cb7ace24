package http

import (
	"errors"
	"net/url"
	"testing"

	"finview/internal/core"
)

func TestParseHomeParams(t *testing.T) {
	tests := []struct {
		query   string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"date=2020-04-27+19%3A30%3A30", "2020-04-27 19:30:30", false},
		{"date=++2020-04-27+19:30:30++", "2020-04-27 19:30:30", false},
		{"date=2020-04-27", "", true},
		{"date=27.04.2020+19:30:30", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			p, err := ParseHomeParams(q)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidArgument) {
					t.Fatalf("error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil || p.Date != tt.want {
				t.Fatalf("got %+v, %v; want %q", p, err, tt.want)
			}
		})
	}
}

func TestParseReportParams(t *testing.T) {
	q := url.Values{"category": {" Супермаркеты\x00 "}, "file": {"out.txt"}}
	p, err := ParseReportParams(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Category != "Супермаркеты" || p.File != "out.txt" || p.Date != nil {
		t.Errorf("params = %+v", p)
	}

	q.Set("date", "2020-04-27")
	if p, _ := ParseReportParams(q); p.Date != "2020-04-27" {
		t.Errorf("date = %v", p.Date)
	}

	if _, err := ParseReportParams(url.Values{}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("missing category error = %v", err)
	}
}

func TestParseSearchQuery(t *testing.T) {
	q, err := ParseSearchQuery(url.Values{"q": {"  Ozon.ru\t"}})
	if err != nil || q != "Ozon.ru" {
		t.Errorf("got %q, %v", q, err)
	}
	if q, err := ParseSearchQuery(url.Values{}); err != nil || q != "" {
		t.Errorf("empty query = %q, %v", q, err)
	}
}
