package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/domain"
)

// App bundles the dependencies shared by all HTTP handlers. Repositories are
// interfaces so tests can swap in fakes.
type App struct {
	Logger              zerolog.Logger
	Sessions            *sessions.CookieStore
	Users               domain.UserRepository
	Categories          domain.CategoryRepository
	Employments         domain.EmploymentRepository
	Applications        domain.ApplicationRepository
	SocialIntegrations  domain.SocialIntegrationRepository
	Fundings            domain.FundingRepository
	FundingApplications domain.FundingApplicationRepository
	Donations           domain.DonationRepository
}

// NewApp wires an App against PostgreSQL-backed repositories.
func NewApp(pool *pgxpool.Pool, store *sessions.CookieStore, logger zerolog.Logger) *App {
	return &App{
		Logger:              logger,
		Sessions:            store,
		Users:               repo.NewUserRepository(pool),
		Categories:          repo.NewCategoryRepository(pool),
		Employments:         repo.NewEmploymentRepository(pool),
		Applications:        repo.NewApplicationRepository(pool),
		SocialIntegrations:  repo.NewSocialIntegrationRepository(pool),
		Fundings:            repo.NewFundingRepository(pool),
		FundingApplications: repo.NewFundingApplicationRepository(pool),
		Donations:           repo.NewDonationRepository(pool),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// message writes the {"message": ...} envelope used across the API.
func (a *App) message(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"message": msg})
}

func (a *App) created(w http.ResponseWriter, id int64, msg string) {
	a.json(w, http.StatusCreated, map[string]any{"id": id, "message": msg})
}

func (a *App) notFound(w http.ResponseWriter, what string) {
	a.message(w, http.StatusNotFound, what+" not found")
}

// internal logs the raw error and returns a generic message to the client.
func (a *App) internal(w http.ResponseWriter, r *http.Request, err error) {
	a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("internal error")
	a.message(w, http.StatusInternalServerError, "Internal server error")
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

const missingFieldsMessage = "Missing required fields"

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
