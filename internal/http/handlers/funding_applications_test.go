package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestFundingApplicationsCreateAndGet(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	body := `{"user_id":1,"funding_id":2,"status":"pending","application_type":"business","concept_note":"Expand the workshop","business_profile":"Registered carpentry shop"}`
	rr := doRequest(t, router, http.MethodPost, "/funding_applications/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Funding application created successfully" {
		t.Fatalf("message = %v", msg)
	}

	got := decodeBody(t, doRequest(t, router, http.MethodGet, "/funding_applications/1", ""))
	if got["application_type"] != "business" || got["status"] != "pending" {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if got["concept_note"] != "Expand the workshop" {
		t.Fatalf("concept_note = %v", got["concept_note"])
	}
	if got["household_income"] != nil {
		t.Fatalf("household_income = %v, want null", got["household_income"])
	}
}

func TestFundingApplicationsCreateInvalidType(t *testing.T) {
	router := newTestRouter(newTestApp())

	rr := doRequest(t, router, http.MethodPost, "/funding_applications/", `{"user_id":1,"funding_id":2,"status":"pending","application_type":"household"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	msg, _ := decodeBody(t, rr)["message"].(string)
	if !strings.Contains(msg, "not a valid application type") {
		t.Fatalf("message = %q", msg)
	}
}
