// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the user endpoints; mount under /api/users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Rnd.Wrap(h.list))
	r.Post("/", h.Rnd.Wrap(h.create))
	r.Get("/top-5-user", h.Rnd.Wrap(h.topFive))
	r.Get("/gender/{gender}", h.Rnd.Wrap(h.byGender))

	r.Get("/{id}", h.Rnd.Wrap(h.getOne))
	r.Patch("/{id}", h.Rnd.Wrap(h.update))
	r.Delete("/{id}", h.Rnd.Wrap(h.del))

	return r
}
