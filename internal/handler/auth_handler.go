/*
Package handler provides HTTP handler functions for user authentication and management.
*/
package handler

import (
	"errors"
	"net/http"

	"authsite/internal/app/auth"
	"authsite/internal/pkg/errs"
	"authsite/internal/pkg/logx"
	"authsite/internal/pkg/metrics"
	"authsite/internal/pkg/req"
	"authsite/internal/pkg/resp"
	"authsite/internal/web"
)

const (
	loginTitle  = "Log in"
	signupTitle = "Sign up"
)

// authErrors maps AuthService failures to the message shown on the form and the metrics outcome label.
var authErrors = []struct {
	err     error
	code    int
	outcome string
}{
	{auth.ErrDuplicateEmail, errs.ErrDuplicateEmail, "duplicate_email"},
	{auth.ErrMissingFields, errs.ErrMissingFields, "missing_fields"},
	{auth.ErrPasswordTooShort, errs.ErrPasswordTooShort, "password_too_short"},
	{auth.ErrUserNotFound, errs.ErrUserNotFound, "user_not_found"},
	{auth.ErrWrongPassword, errs.ErrWrongPassword, "wrong_password"},
}

// classifyAuthError returns the user-facing error and outcome label for err.
// Anything not in authErrors is an internal failure.
func classifyAuthError(err error) (*errs.CustomError, string) {
	for _, known := range authErrors {
		if errors.Is(err, known.err) {
			if known.code == errs.ErrPasswordTooShort {
				return errs.NewError(known.code, auth.MinPasswordLength), known.outcome
			}
			return errs.NewError(known.code), known.outcome
		}
	}
	return errs.NewError(errs.ErrUnknown, err), "error"
}

// HandleLoginPage renders the empty login form.
func HandleLoginPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RenderPage(w, r, deps.Renderer, http.StatusOK, web.PageLogin, web.Page{Title: loginTitle})
	}
}

// HandleLogin checks the posted credentials and establishes a session.
// On success it redirects to the landing page; otherwise it re-renders the form with one error.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.Page{Title: loginTitle}

		if customErr := req.ParseForm(w, r); customErr != nil {
			resp.RenderForm(w, r, deps.Renderer, web.PageLogin, page, customErr)
			return
		}

		values := req.PostValues(r, "email", "password")
		email, password := values[0], values[1]
		page.Email = email

		u, err := deps.Auth.Authenticate(r.Context(), email, password)
		if err != nil {
			customErr, outcome := classifyAuthError(err)
			deps.Metrics.RecordAuth(metrics.OpLogin, outcome)
			if customErr.Code == errs.ErrUnknown {
				resp.RespondError(w, r, customErr)
				return
			}
			logx.Ctx(r.Context()).Info().Str("outcome", outcome).Msg("Login rejected")
			resp.RenderForm(w, r, deps.Renderer, web.PageLogin, page, customErr)
			return
		}

		if err := deps.Sessions.Establish(w, r, u.ID); err != nil {
			logx.Ctx(r.Context()).Error().Err(err).Int64("user_id", u.ID).Msg("Failed to establish session")
			deps.Metrics.RecordAuth(metrics.OpLogin, "error")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		deps.Metrics.RecordAuth(metrics.OpLogin, metrics.OutcomeSuccess)
		logx.Ctx(r.Context()).Info().Int64("user_id", u.ID).Msg("User logged in")
		resp.Redirect(w, r, PathIndex)
	}
}

// HandleSignupPage renders the empty registration form.
func HandleSignupPage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RenderPage(w, r, deps.Renderer, http.StatusOK, web.PageSignup, web.Page{Title: signupTitle})
	}
}

// HandleSignup registers a new account and redirects to the login page.
// Registration does not log the user in.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.Page{Title: signupTitle}

		if customErr := req.ParseForm(w, r); customErr != nil {
			resp.RenderForm(w, r, deps.Renderer, web.PageSignup, page, customErr)
			return
		}

		values := req.PostValues(r, "name", "email", "password")
		name, email, password := values[0], values[1], values[2]
		page.Name, page.Email = name, email

		if _, err := deps.Auth.Register(r.Context(), name, email, password); err != nil {
			customErr, outcome := classifyAuthError(err)
			deps.Metrics.RecordAuth(metrics.OpRegister, outcome)
			if customErr.Code == errs.ErrUnknown {
				resp.RespondError(w, r, customErr)
				return
			}
			resp.RenderForm(w, r, deps.Renderer, web.PageSignup, page, customErr)
			return
		}

		deps.Metrics.RecordAuth(metrics.OpRegister, metrics.OutcomeSuccess)
		resp.Redirect(w, r, PathLogin)
	}
}

// HandleLogout destroys the current session and redirects to the landing page.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Sessions.Destroy(w, r); err != nil {
			logx.Ctx(r.Context()).Error().Err(err).Msg("Failed to destroy session")
			deps.Metrics.RecordAuth(metrics.OpLogout, "error")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if u := CurrentUser(r); u != nil {
			logx.Ctx(r.Context()).Info().Int64("user_id", u.ID).Msg("User logged out")
		}
		deps.Metrics.RecordAuth(metrics.OpLogout, metrics.OutcomeSuccess)
		resp.Redirect(w, r, PathIndex)
	}
}
