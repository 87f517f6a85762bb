package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/middleware"
)

// In-memory repositories backing handler tests. They mirror the behavior of
// the PostgreSQL implementations: ids are assigned on create, lookups on
// unknown ids return domain.ErrNotFound, and donation dates are stamped on
// every write.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCategoryRepo struct {
	nextID     int64
	categories map[int64]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]*domain.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	f.nextID++
	c.ID = f.nextID
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeEmploymentRepo struct {
	nextID      int64
	employments map[int64]*domain.Employment
}

func newFakeEmploymentRepo() *fakeEmploymentRepo {
	return &fakeEmploymentRepo{employments: make(map[int64]*domain.Employment)}
}

func (f *fakeEmploymentRepo) Create(_ context.Context, e *domain.Employment) error {
	f.nextID++
	e.ID = f.nextID
	clone := *e
	f.employments[e.ID] = &clone
	return nil
}

func (f *fakeEmploymentRepo) List(_ context.Context) ([]domain.Employment, error) {
	out := make([]domain.Employment, 0, len(f.employments))
	for _, e := range f.employments {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmploymentRepo) ListByUser(_ context.Context, userID int64) ([]domain.Employment, error) {
	var out []domain.Employment
	for _, e := range f.employments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmploymentRepo) GetByID(_ context.Context, id int64) (*domain.Employment, error) {
	e, ok := f.employments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEmploymentRepo) Update(_ context.Context, e *domain.Employment) error {
	if _, ok := f.employments[e.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *e
	f.employments[e.ID] = &clone
	return nil
}

func (f *fakeEmploymentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.employments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.employments, id)
	return nil
}

type fakeApplicationRepo struct {
	nextID       int64
	applications map[int64]*domain.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[int64]*domain.Application)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, ap *domain.Application) error {
	f.nextID++
	ap.ID = f.nextID
	clone := *ap
	f.applications[ap.ID] = &clone
	return nil
}

func (f *fakeApplicationRepo) List(_ context.Context) ([]domain.Application, error) {
	out := make([]domain.Application, 0, len(f.applications))
	for _, ap := range f.applications {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID int64) ([]domain.Application, error) {
	var out []domain.Application
	for _, ap := range f.applications {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	ap, ok := f.applications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *ap
	return &clone, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, ap *domain.Application) error {
	if _, ok := f.applications[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *ap
	f.applications[ap.ID] = &clone
	return nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.applications[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.applications, id)
	return nil
}

type fakeSocialIntegrationRepo struct {
	nextID       int64
	integrations map[int64]*domain.SocialIntegration
}

func newFakeSocialIntegrationRepo() *fakeSocialIntegrationRepo {
	return &fakeSocialIntegrationRepo{integrations: make(map[int64]*domain.SocialIntegration)}
}

func (f *fakeSocialIntegrationRepo) Create(_ context.Context, s *domain.SocialIntegration) error {
	f.nextID++
	s.ID = f.nextID
	clone := *s
	f.integrations[s.ID] = &clone
	return nil
}

func (f *fakeSocialIntegrationRepo) List(_ context.Context) ([]domain.SocialIntegration, error) {
	out := make([]domain.SocialIntegration, 0, len(f.integrations))
	for _, s := range f.integrations {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSocialIntegrationRepo) ListByUser(_ context.Context, userID int64) ([]domain.SocialIntegration, error) {
	var out []domain.SocialIntegration
	for _, s := range f.integrations {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSocialIntegrationRepo) GetByID(_ context.Context, id int64) (*domain.SocialIntegration, error) {
	s, ok := f.integrations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSocialIntegrationRepo) Update(_ context.Context, s *domain.SocialIntegration) error {
	if _, ok := f.integrations[s.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *s
	f.integrations[s.ID] = &clone
	return nil
}

func (f *fakeSocialIntegrationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.integrations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.integrations, id)
	return nil
}

type fakeFundingRepo struct {
	nextID   int64
	fundings map[int64]*domain.Funding
}

func newFakeFundingRepo() *fakeFundingRepo {
	return &fakeFundingRepo{fundings: make(map[int64]*domain.Funding)}
}

func (f *fakeFundingRepo) Create(_ context.Context, fd *domain.Funding) error {
	f.nextID++
	fd.ID = f.nextID
	clone := *fd
	f.fundings[fd.ID] = &clone
	return nil
}

func (f *fakeFundingRepo) List(_ context.Context) ([]domain.Funding, error) {
	out := make([]domain.Funding, 0, len(f.fundings))
	for _, fd := range f.fundings {
		out = append(out, *fd)
	}
	return out, nil
}

func (f *fakeFundingRepo) GetByID(_ context.Context, id int64) (*domain.Funding, error) {
	fd, ok := f.fundings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *fd
	return &clone, nil
}

func (f *fakeFundingRepo) Update(_ context.Context, fd *domain.Funding) error {
	if _, ok := f.fundings[fd.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *fd
	f.fundings[fd.ID] = &clone
	return nil
}

func (f *fakeFundingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.fundings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.fundings, id)
	return nil
}

type fakeFundingApplicationRepo struct {
	nextID       int64
	applications map[int64]*domain.FundingApplication
}

func newFakeFundingApplicationRepo() *fakeFundingApplicationRepo {
	return &fakeFundingApplicationRepo{applications: make(map[int64]*domain.FundingApplication)}
}

func (f *fakeFundingApplicationRepo) Create(_ context.Context, ap *domain.FundingApplication) error {
	f.nextID++
	ap.ID = f.nextID
	clone := *ap
	f.applications[ap.ID] = &clone
	return nil
}

func (f *fakeFundingApplicationRepo) List(_ context.Context) ([]domain.FundingApplication, error) {
	out := make([]domain.FundingApplication, 0, len(f.applications))
	for _, ap := range f.applications {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeFundingApplicationRepo) ListByUser(_ context.Context, userID int64) ([]domain.FundingApplication, error) {
	var out []domain.FundingApplication
	for _, ap := range f.applications {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeFundingApplicationRepo) GetByID(_ context.Context, id int64) (*domain.FundingApplication, error) {
	ap, ok := f.applications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *ap
	return &clone, nil
}

func (f *fakeFundingApplicationRepo) Update(_ context.Context, ap *domain.FundingApplication) error {
	if _, ok := f.applications[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *ap
	f.applications[ap.ID] = &clone
	return nil
}

func (f *fakeFundingApplicationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.applications[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.applications, id)
	return nil
}

type fakeDonationRepo struct {
	nextID    int64
	donations map[int64]*domain.Donation
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: make(map[int64]*domain.Donation)}
}

func (f *fakeDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	f.nextID++
	d.DonationID = f.nextID
	d.DonationDate = time.Now()
	clone := *d
	f.donations[d.DonationID] = &clone
	return nil
}

func (f *fakeDonationRepo) List(_ context.Context) ([]domain.Donation, error) {
	out := make([]domain.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDonationRepo) ListByUser(_ context.Context, userID int64) ([]domain.Donation, error) {
	var out []domain.Donation
	for _, d := range f.donations {
		if d.UserID != nil && *d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepo) GetByID(_ context.Context, id int64) (*domain.Donation, error) {
	d, ok := f.donations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *d
	return &clone, nil
}

func (f *fakeDonationRepo) Update(_ context.Context, d *domain.Donation) error {
	if _, ok := f.donations[d.DonationID]; !ok {
		return domain.ErrNotFound
	}
	d.DonationDate = time.Now()
	clone := *d
	f.donations[d.DonationID] = &clone
	return nil
}

func (f *fakeDonationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.donations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.donations, id)
	return nil
}

// newTestRouter mounts the API surface the way the production router does,
// without the middleware chain.
func newTestRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Post("/signup", app.Signup)
	r.Post("/login", app.Login)
	r.With(middleware.RequireSession(app.Sessions)).Post("/logout", app.Logout)

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
	r.Route("/donations", func(r chi.Router) {
		r.Get("/", app.DonationsList)
		r.Post("/", app.DonationsCreate)
		r.Get("/{id}", app.DonationsGet)
		r.Put("/{id}", app.DonationsUpdate)
		r.Delete("/{id}", app.DonationsDelete)
	})
	r.Get("/profile/{user_id}", app.Profile)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
	return out
}

func newTestApp() *App {
	return &App{
		Logger:              zerolog.Nop(),
		Sessions:            middleware.NewSessionStore("test-secret", false),
		Users:               newFakeUserRepo(),
		Categories:          newFakeCategoryRepo(),
		Employments:         newFakeEmploymentRepo(),
		Applications:        newFakeApplicationRepo(),
		SocialIntegrations:  newFakeSocialIntegrationRepo(),
		Fundings:            newFakeFundingRepo(),
		FundingApplications: newFakeFundingApplicationRepo(),
		Donations:           newFakeDonationRepo(),
	}
}
