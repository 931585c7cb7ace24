package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/market"
)

const contentTypeJSON = "application/json; charset=utf-8"

// JSONResponseBuilder provides a fluent API for building JSON responses.
type JSONResponseBuilder struct {
	statusCode int
	body       []byte
	headers    map[string]string
	err        error
}

// NewJSONResponse creates a new response builder with default 200 status.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		headers:    map[string]string{"Content-Type": contentTypeJSON},
	}
}

func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Raw sets an already encoded JSON body.
func (b *JSONResponseBuilder) Raw(body []byte) *JSONResponseBuilder {
	b.body = body
	return b
}

// JSON encodes v as the body without escaping HTML characters.
func (b *JSONResponseBuilder) JSON(v any) *JSONResponseBuilder {
	body, err := marshal(v)
	if err != nil {
		b.err = err
		return b
	}
	b.body = body
	return b
}

// Write sends the built response. An encoding failure becomes a 500.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	if b.err != nil {
		b.statusCode = http.StatusInternalServerError
		b.body = []byte(`{"error":"internal error"}`)
	}
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, market.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes {"error": ...}. Server errors hide details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	msg := err.Error()
	logger := log.FromContext(r.Context()).WithComponent(log.ComponentHTTP)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", log.FieldPath, r.URL.Path, log.FieldError, err)
		if status == http.StatusInternalServerError {
			msg = "internal error"
		}
	} else {
		logger.WarnContext(r.Context(), "Request rejected", log.FieldPath, r.URL.Path, log.FieldError, err)
	}
	NewJSONResponse().Status(status).JSON(map[string]string{"error": msg}).Write(w)
}
