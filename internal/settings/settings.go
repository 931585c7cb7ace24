// Package settings loads the user's watch lists from a JSON document.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"finview/internal/core"
)

// Settings lists the currencies and stock tickers shown on the home page.
type Settings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// Load reads settings from path. A missing file yields core.ErrNotFound and
// an unreadable document or missing key yields core.ErrInvalidFormat.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("%w: settings file %s", core.ErrNotFound, path)
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(b)
}

// Parse decodes a settings document. Both keys must be present.
func Parse(b []byte) (Settings, error) {
	var raw struct {
		Currencies *[]string `json:"user_currencies"`
		Stocks     *[]string `json:"user_stocks"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return Settings{}, fmt.Errorf("%w: settings: %v", core.ErrInvalidFormat, err)
	}
	if raw.Currencies == nil || raw.Stocks == nil {
		return Settings{}, fmt.Errorf("%w: settings need user_currencies and user_stocks", core.ErrInvalidFormat)
	}
	return Settings{Currencies: *raw.Currencies, Stocks: *raw.Stocks}, nil
}

// Source supplies settings on demand.
type Source interface {
	Settings() (Settings, error)
}

// File is a Source reading the settings document at the given path on every call.
type File string

func (f File) Settings() (Settings, error) {
	return Load(string(f))
}

// Static is a Source serving fixed settings.
type Static Settings

func (s Static) Settings() (Settings, error) {
	return Settings(s), nil
}
