package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldQuery         = "query"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldUserAgent     = "user_agent"
	FieldSuccess       = "success"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldRecords       = "records"
	FieldMatched       = "matched"
	FieldCategory      = "category"
	FieldReferenceDate = "reference_date"
	FieldReportPath    = "report_path"
	FieldCards         = "cards"
	FieldCurrencies    = "currencies"
	FieldStocks        = "stocks"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentLedger   = "ledger"
	ComponentSettings = "settings"
	ComponentMarket   = "market"
	ComponentCache    = "cache"
	ComponentHome     = "home"
	ComponentReport   = "report"
	ComponentSearch   = "search"
	ComponentSecurity = "security"
	ComponentTrace    = "trace"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpFilter    = "filter"
	OpAggregate = "aggregate"
	OpRank      = "rank"
	OpFetch     = "fetch"
	OpSearch    = "search"
	OpReport    = "report"
	OpWrite     = "write"
	OpValidate  = "validate"
	OpShutdown  = "shutdown"
	OpStartup   = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

func (f LogFields) WithRequestID(requestID string) LogFields {
	f[FieldRequestID] = requestID
	return f
}

func (f LogFields) WithClientIP(ip string) LogFields {
	f[FieldClientIP] = ip
	return f
}

// WithError adds the error text; nil errors are skipped
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithReport adds category report fields
func (f LogFields) WithReport(category, referenceDate string, records int, path string) LogFields {
	f[FieldCategory] = category
	f[FieldReferenceDate] = referenceDate
	f[FieldRecords] = records
	f[FieldReportPath] = path
	return f
}

func (f LogFields) WithHTTPRequest(method, path, query, userAgent string) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldQuery] = query
	f[FieldUserAgent] = userAgent
	return f
}

func (f LogFields) WithHTTPResponse(statusCode int, durationMs int64, success bool) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = success
	return f
}

// ToSlice converts LogFields to a slice for slog.
// The component is dropped since Logger adds its own.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		if k == FieldComponent {
			continue
		}
		slice = append(slice, k, v)
	}
	return slice
}
