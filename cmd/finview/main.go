package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"finview/internal/cli"
	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/report"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	var (
		date       = flag.String("date", cfg.ReferenceDate, "reference moment, YYYY-MM-DD HH:MM:SS (default now)")
		query      = flag.String("query", "Ozon.ru", "search text")
		category   = flag.String("category", "Супермаркеты", "category of the spending report")
		reportFile = flag.String("report-file", "", "report file name (default report_<timestamp>.txt)")
	)
	flag.Parse()

	if *date == "" {
		*date = time.Now().UTC().Format(core.ReferenceLayout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize", log.FieldOperation, log.OpStartup, log.FieldError, err)
		os.Exit(1)
	}

	if err := run(ctx, os.Stdout, app, *date, *query, *category, *reportFile); err != nil {
		logger.Error("finview failed", log.FieldError, err)
		os.Exit(exitCode(err))
	}
}

// run prints the home page, the search result and the category report.
func run(ctx context.Context, out io.Writer, app *cli.App, date, query, category, reportFile string) error {
	fmt.Fprintln(out, "===== Главная =====")
	page, err := app.Home.Home(ctx, date)
	if err != nil {
		return fmt.Errorf("home page: %w", err)
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("encode home page: %w", err)
	}

	fmt.Fprintln(out, "\n===== Простой поиск =====")
	found, err := app.Search.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	fmt.Fprintln(out, string(found))

	fmt.Fprintln(out, "\n===== Траты по категории =====")
	rep, err := app.Report.SpendingByCategory(ctx, category, date, reportFile)
	if err != nil {
		return fmt.Errorf("category report: %w", err)
	}
	fmt.Fprint(out, report.Render(rep.Ledger))
	fmt.Fprintf(out, "\nreport saved to %s\n", rep.Path)
	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		return 2
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrInvalidFormat):
		return 3
	default:
		return 1
	}
}
