package services

import (
	"context"
	"fmt"
	"time"

	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/report"
	"finview/internal/sheets"
)

// CategoryReport is a computed category report and where it was persisted.
type CategoryReport struct {
	Category      string
	ReferenceDate time.Time
	Ledger        core.Ledger
	Path          string
}

// ReportService computes category reports and persists each result as a
// text snapshot.
type ReportService struct {
	ledger sheets.LedgerReader
	writer *report.Writer
	logger *log.Logger
	sl     *log.StructuredLogger
	now    func() time.Time
}

func NewReportService(ledger sheets.LedgerReader, writer *report.Writer, logger *log.Logger) *ReportService {
	return &ReportService{
		ledger: ledger,
		writer: writer,
		logger: logger.WithComponent(log.ComponentReport),
		sl:     log.NewStructuredLogger(logger),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used when no reference date is given.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// SpendingByCategory returns the records of category in the 90 days up to
// date, then writes them to fileName (or a timestamped default). date is
// resolved by core.ReferenceDate.
func (s *ReportService) SpendingByCategory(ctx context.Context, category string, date any, fileName string) (CategoryReport, error) {
	ref, err := core.ReferenceDate(date, s.now())
	if err != nil {
		return CategoryReport{}, err
	}
	l, err := s.ledger.ReadLedger(ctx)
	if err != nil {
		return CategoryReport{}, fmt.Errorf("load ledger: %w", err)
	}
	res, err := core.SpendingByCategory(l, category, ref)
	if err != nil {
		return CategoryReport{}, fmt.Errorf("spending by category: %w", err)
	}

	rep := CategoryReport{Category: category, ReferenceDate: ref, Ledger: res}
	rep.Path, err = s.writer.Write(fileName, res)
	if err != nil {
		s.sl.LogError(ctx, "Category report not persisted", err, log.ComponentReport, log.OpWrite,
			log.NewFields().WithReport(category, ref.Format(core.ReferenceLayout), res.Len(), ""))
		return rep, fmt.Errorf("persist report: %w", err)
	}
	s.sl.LogReportWritten(ctx, category, ref.Format(core.ReferenceLayout), res.Len(), rep.Path)
	return rep, nil
}
