package handler

import (
	"net/http"

	"authsite/internal/pkg/resp"
	"authsite/internal/web"
)

// HandleIndex renders the landing page greeting the current user by name.
// Without a user in the context it behaves like RequireUser and sends the visitor to the login page.
func HandleIndex(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := CurrentUser(r)
		if current == nil {
			resp.Redirect(w, r, PathLogin)
			return
		}

		resp.RenderPage(w, r, deps.Renderer, http.StatusOK, web.PageIndex, web.Page{
			Title: "Home",
			Name:  current.Name,
		})
	}
}
