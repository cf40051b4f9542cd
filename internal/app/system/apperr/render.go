// internal/app/system/apperr/render.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// HandlerFunc is an HTTP handler that reports failure instead of writing
// its own error response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Renderer is the single boundary that turns handler errors into JSON
// responses. In strict mode (production) unknown errors render a fixed
// message so internals never leak.
type Renderer struct {
	log    *zap.Logger
	strict bool
}

func NewRenderer(log *zap.Logger, strict bool) *Renderer {
	return &Renderer{log: log, strict: strict}
}

// Wrap adapts a HandlerFunc into an http.HandlerFunc, rendering any
// returned error.
func (rn *Renderer) Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			rn.Render(w, r, err)
		}
	}
}

// Render writes the error as the uniform envelope. Operational errors keep
// their message and status; unknown errors log at error level and render
// 500.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = Wrap(err, Unknown, err.Error())
	}

	if ae.Kind == Unknown {
		rn.log.Error("unhandled error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		msg := ae.Message
		if rn.strict {
			msg = "Something went very wrong!"
		}
		respond.Error(w, ae.Status, msg)
		return
	}

	rn.log.Warn("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("kind", ae.Kind.String()),
		zap.Int("status", ae.Status),
		zap.String("message", ae.Message),
	)
	respond.Error(w, ae.Status, ae.Message)
}

// NotFound is the catch-all for unrouted paths.
func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound, fmt.Sprintf("Can't find %s on this server", r.URL.Path))
}
