// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// list handles GET /api/users. Query shaping: ?limit=N, ?sort=field (prefix
// "-" for descending), ?fields=a,b,c projection.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	opts, err := listOptionsFromQuery(r)
	if err != nil {
		return err
	}
	return h.serveList(w, r, opts)
}

// topFive handles GET /api/users/top-5-user: the five newest records with a
// trimmed field set.
func (h *Handler) topFive(w http.ResponseWriter, r *http.Request) error {
	return h.serveList(w, r, userstore.ListOptions{
		Limit:  5,
		Sort:   "-created_at",
		Fields: []string{"first_name", "last_name", "email", "gender", "slug"},
	})
}

// byGender handles GET /api/users/gender/{gender}. The param is folded to
// the enum's canonical spelling before filtering; an unrecognized value is
// passed through and matches nothing.
func (h *Handler) byGender(w http.ResponseWriter, r *http.Request) error {
	gender := chi.URLParam(r, "gender")
	if canonical, ok := userstore.CanonicalGender(gender); ok {
		gender = canonical
	}
	return h.serveList(w, r, userstore.ListOptions{Gender: gender})
}

func (h *Handler) serveList(w http.ResponseWriter, r *http.Request, opts userstore.ListOptions) error {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	records, err := h.Store.List(ctx, opts)
	if err != nil {
		return apperr.FromStore(err, "user")
	}
	respond.Success(w, http.StatusOK, map[string]any{
		"results": len(records),
		"users":   records,
	})
	return nil
}

func listOptionsFromQuery(r *http.Request) (userstore.ListOptions, error) {
	var opts userstore.ListOptions

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return opts, apperr.Newf(apperr.Validation, "Invalid limit: %s", raw)
		}
		opts.Limit = n
	}
	opts.Sort = q.Get("sort")
	if raw := q.Get("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.Fields = append(opts.Fields, f)
			}
		}
	}
	return opts, nil
}
