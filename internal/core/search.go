package core

import (
	"bytes"
	"encoding/json"
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SearchRecords returns the row dictionaries whose description or category
// contains query, ignoring case. Fields that are missing or not text count as
// empty. Entries that are not map[string]any are skipped. An empty query
// matches every row. Matches are shallow copies of the input rows.
func SearchRecords(records []any, query string) []map[string]any {
	lower := cases.Lower(language.Und)
	q := lower.String(query)

	out := make([]map[string]any, 0)
	for _, rec := range records {
		row, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if strings.Contains(lower.String(textField(row, FieldDescription)), q) ||
			strings.Contains(lower.String(textField(row, FieldCategory)), q) {
			out = append(out, maps.Clone(row))
		}
	}
	return out
}

// Search runs SearchRecords and encodes the matches as a JSON array. Non-ASCII
// text is written as is.
func Search(records []any, query string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(SearchRecords(records, query)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func textField(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}
