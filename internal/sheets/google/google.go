package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"finview/internal/core"
	ports "finview/internal/sheets"

	"google.golang.org/api/googleapi"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultRange is the sheet read when no range is configured.
const DefaultRange = "Operations"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	// A1 range holding the ledger, header row first.
	rng string
}

// Options configures a Sheets ledger client. Credentials are read from
// CredentialsJSON, then CredentialsFile, then GOOGLE_APPLICATION_CREDENTIALS.
type Options struct {
	SpreadsheetID   string
	Range           string
	CredentialsJSON string
	CredentialsFile string
}

// Ensure interface conformance
var _ ports.LedgerReader = (*Client)(nil)

// New creates a Sheets client authenticated with service account credentials.
func New(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.SpreadsheetID) == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	svc, err := newSheetsService(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return NewWithService(svc, opts.SpreadsheetID, opts.Range), nil
}

// NewWithService wraps an already configured Sheets service.
func NewWithService(svc *gsheet.Service, spreadsheetID, rng string) *Client {
	rng = strings.TrimSpace(rng)
	if rng == "" {
		rng = DefaultRange
	}
	return &Client{svc: svc, spreadsheetID: strings.TrimSpace(spreadsheetID), rng: rng}
}

// newSheetsService initializes a read-only Sheets service using service
// account credentials.
func newSheetsService(ctx context.Context, opts Options) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(opts.CredentialsJSON)
	serviceAccountFile := strings.TrimSpace(opts.CredentialsFile)
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		b, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	slog.InfoContext(ctx, "Creating Google Sheets service with Service Account",
		"credentials_size", len(credentialsJSON),
		"scope", gsheet.SpreadsheetsReadonlyScope)

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ReadLedger implements sheets.LedgerReader.
func (c *Client) ReadLedger(ctx context.Context) (core.Ledger, error) {
	if c.svc == nil {
		return core.Ledger{}, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return core.Ledger{}, fmt.Errorf("%w: spreadsheet %s range %s", core.ErrNotFound, c.spreadsheetID, c.rng)
		}
		return core.Ledger{}, fmt.Errorf("read %s: %w", c.rng, err)
	}

	l, err := ports.ParseValues(resp.Values)
	if err != nil {
		return core.Ledger{}, fmt.Errorf("parse %s: %w", c.rng, err)
	}
	slog.InfoContext(ctx, "Ledger loaded from Google Sheets",
		"range", c.rng,
		"records", l.Len())
	return l, nil
}
