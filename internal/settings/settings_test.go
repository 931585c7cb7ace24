package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"finview/internal/core"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_settings.json")
	doc := `{"user_currencies": ["USD", "EUR"], "user_stocks": ["AAPL", "AMZN", "GOOGL"]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Currencies) != 2 || s.Currencies[1] != "EUR" {
		t.Errorf("currencies = %v", s.Currencies)
	}
	if len(s.Stocks) != 3 || s.Stocks[0] != "AAPL" {
		t.Errorf("stocks = %v", s.Stocks)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing file: error = %v, want ErrNotFound", err)
	}

	cases := map[string]string{
		"broken json":    `{"user_currencies": [`,
		"missing stocks": `{"user_currencies": ["USD"]}`,
		"wrong type":     `{"user_currencies": "USD", "user_stocks": []}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, core.ErrInvalidFormat) {
				t.Errorf("error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestParse_EmptyLists(t *testing.T) {
	s, err := Parse([]byte(`{"user_currencies": [], "user_stocks": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Currencies) != 0 || len(s.Stocks) != 0 {
		t.Fatalf("expected empty lists, got %+v", s)
	}
}

func TestSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_settings.json")
	var src Source = File(path)
	if _, err := src.Settings(); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if err := os.WriteFile(path, []byte(`{"user_currencies": ["EUR"], "user_stocks": ["TSLA"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := src.Settings()
	if err != nil || s.Currencies[0] != "EUR" || s.Stocks[0] != "TSLA" {
		t.Fatalf("file source = %+v, %v", s, err)
	}

	src = Static{Currencies: []string{"USD"}}
	if s, _ := src.Settings(); len(s.Currencies) != 1 || s.Currencies[0] != "USD" {
		t.Fatalf("static source = %+v", s)
	}
}
