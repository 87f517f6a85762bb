package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// NewRouter assembles the chi router. Authentication is declared explicitly
// per route group; everything outside requireSession is public.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Locale)
	r.Use(middleware.Logger(logger, lookup))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

	requireSession := middleware.RequireSession(app.Sessions)

	r.Get("/v1/healthz", app.Health)

	r.Post("/signup", app.Signup)
	r.Post("/login", app.Login)
	r.With(requireSession).Post("/logout", app.Logout)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", app.UsersList)
		r.Post("/", app.UsersCreate)
		r.Get("/{id}", app.UsersGet)
		r.Put("/{id}", app.UsersUpdate)
		r.Delete("/{id}", app.UsersDelete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", app.CategoriesList)
		r.Post("/", app.CategoriesCreate)
		r.Get("/{id}", app.CategoriesGet)
		r.Put("/{id}", app.CategoriesUpdate)
		r.Delete("/{id}", app.CategoriesDelete)
	})

	r.Route("/employments", func(r chi.Router) {
		r.Get("/", app.EmploymentsList)
		r.Post("/", app.EmploymentsCreate)
		r.Get("/{id}", app.EmploymentsGet)
		r.Put("/{id}", app.EmploymentsUpdate)
		r.Delete("/{id}", app.EmploymentsDelete)
	})

	r.Route("/applications", func(r chi.Router) {
		r.Get("/", app.ApplicationsList)
		r.Post("/", app.ApplicationsCreate)
		r.Get("/{id}", app.ApplicationsGet)
		r.Put("/{id}", app.ApplicationsUpdate)
		r.Delete("/{id}", app.ApplicationsDelete)
	})

	r.Route("/social_integrations", func(r chi.Router) {
		r.Get("/", app.SocialIntegrationsList)
		r.Post("/", app.SocialIntegrationsCreate)
		r.Get("/{id}", app.SocialIntegrationsGet)
		r.Put("/{id}", app.SocialIntegrationsUpdate)
		r.Delete("/{id}", app.SocialIntegrationsDelete)
	})

	r.Route("/fundings", func(r chi.Router) {
		r.Get("/", app.FundingsList)
		r.Post("/", app.FundingsCreate)
		r.Get("/{id}", app.FundingsGet)
		r.Put("/{id}", app.FundingsUpdate)
		r.Delete("/{id}", app.FundingsDelete)
	})

	r.Route("/funding_applications", func(r chi.Router) {
		r.Get("/", app.FundingApplicationsList)
		r.Post("/", app.FundingApplicationsCreate)
		r.Get("/{id}", app.FundingApplicationsGet)
		r.Put("/{id}", app.FundingApplicationsUpdate)
		r.Delete("/{id}", app.FundingApplicationsDelete)
	})

	r.Get("/profile/{user_id}", app.Profile)

	r.Route("/donations", func(r chi.Router) {
		r.Get("/", app.DonationsList)
		r.Post("/", app.DonationsCreate)
		r.Get("/{id}", app.DonationsGet)
		r.Put("/{id}", app.DonationsUpdate)
		r.Delete("/{id}", app.DonationsDelete)
	})

	return r
}
