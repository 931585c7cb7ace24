package http

import (
	"net/http"

	"finview/internal/core"
	"finview/internal/log"
)

// categoryReportResponse is the JSON shape of a category report.
type categoryReportResponse struct {
	Category      string `json:"category"`
	ReferenceDate string `json:"reference_date"`
	ReportPath    string `json:"report_path"`
	Records       []any  `json:"records"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	NewJSONResponse().JSON(map[string]string{"status": "ok"}).Write(w)
}

// handleReady reports ready once the ledger can be loaded.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		NewJSONResponse().JSON(map[string]string{"status": "ready"}).Write(w)
		return
	}
	if _, err := s.ledger.ReadLedger(r.Context()); err != nil {
		s.logger.WarnContext(r.Context(), "Ledger not readable", log.FieldError, err)
		NewJSONResponse().Status(http.StatusServiceUnavailable).
			JSON(map[string]string{"status": "unavailable", "error": err.Error()}).Write(w)
		return
	}
	NewJSONResponse().JSON(map[string]string{"status": "ready"}).Write(w)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	params, err := ParseHomeParams(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := s.home.Home(r.Context(), params.Date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	NewJSONResponse().JSON(page).Write(w)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q, err := ParseSearchQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := s.search.Search(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	NewJSONResponse().Raw(out).Write(w)
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	params, err := ParseReportParams(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.report.SpendingByCategory(r.Context(), params.Category, params.Date, params.File)
	if err != nil {
		writeError(w, r, err)
		return
	}
	NewJSONResponse().JSON(categoryReportResponse{
		Category:      rep.Category,
		ReferenceDate: rep.ReferenceDate.Format(core.ReferenceLayout),
		ReportPath:    rep.Path,
		Records:       rep.Ledger.Rows(),
	}).Write(w)
}
