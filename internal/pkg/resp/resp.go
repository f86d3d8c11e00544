/*
Package resp provides helper functions for writing HTTP responses.

It renders HTML pages through the web package, issues redirects, and keeps the
standardized JSON envelope used by machine-facing endpoints such as /health.
*/
package resp

import (
	"bytes"
	"encoding/json"
	"net/http"

	"authsite/internal/pkg/errs"
	"authsite/internal/pkg/logx"
	"authsite/internal/web"
)

// JSONResponse defines the standardized JSON response structure.
type JSONResponse struct {
	// Code is the business status code (0 for success, others see errs package).
	Code int `json:"code"`

	// Message is the status description or error message.
	Message string `json:"message"`

	// Data is the optional response payload.
	Data any `json:"data,omitempty"`
}

// RespondJSON sets the Content-Type and writes payload as JSON.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logx.Ctx(r.Context()).Error().Err(err).Int("http_status", httpStatus).Msg("Error encoding JSON response")
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpStatus)
	_, _ = w.Write(response)
}

// RespondSuccess sends a JSON success envelope with HTTP 200.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, JSONResponse{Code: 0, Message: "success", Data: data})
}

// RenderPage executes page into a buffer and writes it with the given status,
// so a template failure still produces a clean 500.
func RenderPage(w http.ResponseWriter, r *http.Request, renderer *web.Renderer, status int, page string, data web.Page) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		logx.Ctx(r.Context()).Error().Err(err).Str("page", page).Msg("Error rendering page")
		RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// RenderForm re-renders a form page with customErr as its single error message.
func RenderForm(w http.ResponseWriter, r *http.Request, renderer *web.Renderer, page string, data web.Page, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}
	data.Errors = []string{customErr.Message}
	RenderPage(w, r, renderer, customErr.Status, page, data)
}

// Redirect sends a 302 to location.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}

// RespondError writes customErr's message as plain text with its HTTP status.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.Error(w, customErr.Message, customErr.Status)
}
