// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/rosterhub/internal/app/features/health"
	membersfeature "github.com/dalemusser/rosterhub/internal/app/features/members"
	usersfeature "github.com/dalemusser/rosterhub/internal/app/features/users"
	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/auth"
	"github.com/dalemusser/rosterhub/internal/app/system/mailer"
	"github.com/dalemusser/rosterhub/internal/app/system/reqlog"
	"github.com/dalemusser/rosterhub/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Strict error rendering is enabled in
// production so unknown failures never leak internals.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	rnd := apperr.NewRenderer(logger, coreCfg.Env == "prod")

	memberStore := memberstore.New(deps.MongoDatabase)
	userStore := userstore.New(deps.MongoDatabase)

	tokens := token.NewManager(appCfg.JWTSecret, appCfg.JWTExpiry)
	mw := auth.NewMiddleware(tokens, memberStore, logger)
	mail := mailer.New(appCfg.MailSMTPHost, appCfg.MailSMTPPort, appCfg.MailSMTPUser, appCfg.MailSMTPPass, appCfg.MailFrom)

	r := chi.NewRouter()
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// User records
	usersHandler := usersfeature.NewHandler(userStore, rnd, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler))

	// Member accounts and auth flows
	membersHandler := membersfeature.NewHandler(
		memberStore, tokens, mail, rnd, logger, appCfg.BaseURL, appCfg.ResetExpiry)
	r.Mount("/api/members", membersfeature.Routes(membersHandler, mw))

	// Everything else is an explicit JSON 404.
	r.NotFound(rnd.NotFound)

	return r, nil
}
