package handler

import (
	"context"
	"errors"
	"net/http"

	"authsite/internal/app/auth"
	"authsite/internal/app/user"
	"authsite/internal/pkg/errs"
	"authsite/internal/pkg/logx"
	"authsite/internal/pkg/resp"
)

// contextKey prevents collisions with context values set by other packages.
type contextKey string

// ContextCurrentUserKey stores the *user.User resolved by RequireUser.
const ContextCurrentUserKey contextKey = "current_user"

// RequireUser is the access-control gate for protected pages.
// Anonymous requests are redirected to the login page and handling stops there.
// Otherwise the resolved user is stored in the request context for CurrentUser.
func RequireUser(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := deps.Sessions.Resolve(r)
			if !ok {
				resp.Redirect(w, r, PathLogin)
				return
			}

			u, err := deps.Auth.ResolveSession(r.Context(), userID)
			if err != nil {
				if errors.Is(err, auth.ErrAnonymous) {
					// signed session for a user this store does not know, e.g. after a restart
					logx.Ctx(r.Context()).Warn().Int64("user_id", userID).Msg("Session refers to unknown user, clearing it")
					if err := deps.Sessions.Destroy(w, r); err != nil {
						logx.Ctx(r.Context()).Error().Err(err).Msg("Failed to clear stale session")
					}
					resp.Redirect(w, r, PathLogin)
					return
				}

				logx.Ctx(r.Context()).Error().Err(err).Int64("user_id", userID).Msg("Failed to resolve session user")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}

			ctx := context.WithValue(r.Context(), ContextCurrentUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the user stored by RequireUser, or nil outside the gate.
func CurrentUser(r *http.Request) *user.User {
	u, ok := r.Context().Value(ContextCurrentUserKey).(*user.User)
	if !ok {
		return nil
	}
	return u
}
