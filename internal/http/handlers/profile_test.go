package handlers

import (
	"context"
	"net/http"
	"testing"

	"server/internal/domain"
)

func seedProfileUser(t *testing.T, app *App) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "pbkdf2:sha256:600000$ab$cd",
	}
	if err := app.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestProfileUnknownUser(t *testing.T) {
	router := newTestRouter(newTestApp())

	rr := doRequest(t, router, http.MethodGet, "/profile/99", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if msg := decodeBody(t, rr)["message"]; msg != "User not found" {
		t.Fatalf("message = %v", msg)
	}
}

func TestProfileEmptyCollectionsPlaceholder(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)
	seedProfileUser(t, app)

	rr := doRequest(t, router, http.MethodGet, "/profile/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	got := decodeBody(t, rr)

	for _, key := range []string{"employments", "applications", "social_integrations", "funding_applications", "donations"} {
		if got[key] != "No records found" {
			t.Fatalf("%s = %v, want placeholder string", key, got[key])
		}
	}
	if got["username"] != "jane" || got["email"] != "jane@example.com" {
		t.Fatalf("base fields mismatch: %v", got)
	}
	if _, leaked := got["password"]; leaked {
		t.Fatalf("profile response leaks the password hash")
	}
}

func TestProfileCollectsRelatedRecords(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)
	user := seedProfileUser(t, app)

	employment := &domain.Employment{
		UserID:      user.ID,
		CategoryID:  2,
		Title:       "Mason",
		Description: "Brick work",
	}
	if err := app.Employments.Create(context.Background(), employment); err != nil {
		t.Fatalf("seeding employment: %v", err)
	}
	donation := &domain.Donation{
		UserID:        &user.ID,
		DonationType:  domain.DonationTypeMonthly,
		Amount:        5000,
		PaymentMethod: domain.PaymentMethodMobileMoney,
	}
	if err := app.Donations.Create(context.Background(), donation); err != nil {
		t.Fatalf("seeding donation: %v", err)
	}

	got := decodeBody(t, doRequest(t, router, http.MethodGet, "/profile/1", ""))

	employments, ok := got["employments"].([]any)
	if !ok || len(employments) != 1 {
		t.Fatalf("employments = %v, want one-element list", got["employments"])
	}
	first, _ := employments[0].(map[string]any)
	if first["title"] != "Mason" {
		t.Fatalf("employment title = %v", first["title"])
	}

	donations, ok := got["donations"].([]any)
	if !ok || len(donations) != 1 {
		t.Fatalf("donations = %v, want one-element list", got["donations"])
	}

	// Collections with no rows still render the placeholder.
	if got["applications"] != "No records found" {
		t.Fatalf("applications = %v, want placeholder", got["applications"])
	}
}
