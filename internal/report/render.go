// Package report renders ledgers as plain text tables and persists them as
// report snapshots.
package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"finview/internal/core"
)

// columnTitles are the header labels of the text report, keyed by field.
var columnTitles = map[string]string{
	core.FieldOperationDate:   "Дата операции",
	core.FieldCardNumber:      "Номер карты",
	core.FieldOperationAmount: "Сумма операции",
	core.FieldPaymentAmount:   "Сумма платежа",
	core.FieldCategory:        "Категория",
	core.FieldDescription:     "Описание",
}

var reportOrder = []string{
	core.FieldOperationDate,
	core.FieldCardNumber,
	core.FieldOperationAmount,
	core.FieldPaymentAmount,
	core.FieldCategory,
	core.FieldDescription,
}

// Render returns the ledger as whitespace aligned columns: a header line
// followed by one line per record. Only fields present in the schema are
// shown; amounts are right aligned.
func Render(l core.Ledger) string {
	var fields []string
	for _, f := range reportOrder {
		if l.Has(f) {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return ""
	}

	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = columnTitles[f]
	}
	rows := make([][]string, 0, l.Len())
	for _, t := range l.Records {
		rows = append(rows, cells(t, fields))
	}

	cell := lipgloss.NewStyle().PaddingRight(2)
	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch fields[col] {
			case core.FieldOperationAmount, core.FieldPaymentAmount:
				return cell.Align(lipgloss.Right)
			}
			return cell
		})

	lines := strings.Split(tbl.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

func cells(t core.Transaction, fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case core.FieldOperationDate:
			if t.OperationDate.IsEmpty() {
				out[i] = t.RawDate
			} else {
				out[i] = t.OperationDate.Format(core.LedgerTimeLayout)
			}
		case core.FieldCardNumber:
			out[i] = text(t.CardNumber)
		case core.FieldOperationAmount:
			out[i] = t.OperationAmount.StringFixed(2)
		case core.FieldPaymentAmount:
			out[i] = t.PaymentAmount.StringFixed(2)
		case core.FieldCategory:
			out[i] = text(t.Category)
		case core.FieldDescription:
			out[i] = text(t.Description)
		}
	}
	return out
}

func text(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}
