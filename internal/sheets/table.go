package sheets

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"finview/internal/core"
)

// headerAliases maps accepted column headers to canonical field names. The
// Russian headers are the ones used by the bank export.
var headerAliases = map[string]string{
	"дата операции":    core.FieldOperationDate,
	"operation_date":   core.FieldOperationDate,
	"date":             core.FieldOperationDate,
	"номер карты":      core.FieldCardNumber,
	"card_number":      core.FieldCardNumber,
	"card":             core.FieldCardNumber,
	"сумма операции":   core.FieldOperationAmount,
	"operation_amount": core.FieldOperationAmount,
	"amount":           core.FieldOperationAmount,
	"сумма платежа":    core.FieldPaymentAmount,
	"payment_amount":   core.FieldPaymentAmount,
	"категория":        core.FieldCategory,
	"category":         core.FieldCategory,
	"описание":         core.FieldDescription,
	"description":      core.FieldDescription,
}

// FieldFor returns the canonical field a column header maps to.
func FieldFor(header string) (string, bool) {
	f, ok := headerAliases[strings.ToLower(strings.TrimSpace(header))]
	return f, ok
}

// IsAmountField reports whether the field holds a decimal amount.
func IsAmountField(field string) bool {
	return field == core.FieldOperationAmount || field == core.FieldPaymentAmount
}

// ParseValues converts a values matrix whose first row is the header into a
// ledger. Unknown columns are kept as extra text fields. Fully blank rows are
// skipped. Bad cells never fail the batch: an unparseable date leaves the
// record undated and an unparseable amount counts as zero.
func ParseValues(values [][]interface{}) (core.Ledger, error) {
	if len(values) == 0 {
		return core.Ledger{}, fmt.Errorf("%w: no header row", core.ErrInvalidFormat)
	}
	headers := toStrings(values[0])

	fieldAt := make([]string, len(headers))
	var columns []string
	seen := map[string]bool{}
	for i, h := range headers {
		f, ok := FieldFor(h)
		if !ok || seen[f] {
			continue
		}
		fieldAt[i] = f
		seen[f] = true
		columns = append(columns, f)
	}
	if len(columns) == 0 {
		return core.Ledger{}, fmt.Errorf("%w: unexpected ledger header %v", core.ErrInvalidFormat, headers)
	}

	l := core.Ledger{Columns: columns}
	badAmounts := 0
	for _, raw := range values[1:] {
		cells := toStrings(raw)
		if isBlank(cells) {
			continue
		}
		var t core.Transaction
		for i, h := range headers {
			v := safeGet(cells, i)
			switch fieldAt[i] {
			case core.FieldOperationDate:
				t.RawDate = v
				t.OperationDate, _ = core.ParseOperationDate(v)
			case core.FieldCardNumber:
				t.CardNumber = optional(v)
			case core.FieldOperationAmount:
				t.OperationAmount = parseAmountCell(v, &badAmounts)
			case core.FieldPaymentAmount:
				t.PaymentAmount = parseAmountCell(v, &badAmounts)
			case core.FieldCategory:
				t.Category = optional(v)
			case core.FieldDescription:
				t.Description = optional(v)
			default:
				if h == "" || v == "" {
					continue
				}
				if t.Extra == nil {
					t.Extra = map[string]string{}
				}
				t.Extra[h] = v
			}
		}
		l.Records = append(l.Records, t)
	}
	if badAmounts > 0 {
		slog.Warn("Unparseable amount cells counted as zero",
			"component", "ledger",
			"cells", badAmounts,
			"records", l.Len())
	}
	return l, nil
}

// parseAmountCell parses an amount, counting non-empty cells that fail.
func parseAmountCell(v string, bad *int) decimal.Decimal {
	d, err := core.ParseAmount(v)
	if err != nil && v != "" {
		*bad++
	}
	return d
}

// StringRows adapts a string matrix to the shape ParseValues expects.
func StringRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = make([]interface{}, len(r))
		for j, v := range r {
			out[i][j] = v
		}
	}
	return out
}

// optional treats empty cells and the spreadsheet "nan" marker as null.
func optional(v string) *string {
	if v == "" || strings.EqualFold(v, "nan") {
		return nil
	}
	return core.String(v)
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
