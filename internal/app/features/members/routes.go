// internal/app/features/members/routes.go
package members

import (
	"github.com/dalemusser/rosterhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the member endpoints; mount under
// /api/members.
func Routes(h *Handler, mw *auth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.Rnd.Wrap(h.signup))
	r.Post("/login", h.Rnd.Wrap(h.login))
	r.Post("/forgot-password", h.Rnd.Wrap(h.forgotPassword))
	r.Patch("/reset-password/{token}", h.Rnd.Wrap(h.resetPassword))

	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireMember)
		pr.Get("/me", h.Rnd.Wrap(h.me))
		pr.With(auth.RequireRole("admin")).Get("/", h.Rnd.Wrap(h.list))
	})

	return r
}
