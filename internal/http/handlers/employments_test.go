package handlers

import (
	"context"
	"net/http"
	"testing"
)

func TestEmploymentsCreateMissingDescription(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	rr := doRequest(t, router, http.MethodPost, "/employments/", `{"user_id":1,"category_id":2,"title":"Mason"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Missing required fields" {
		t.Fatalf("message = %v", msg)
	}

	employments, _ := app.Employments.List(context.Background())
	if len(employments) != 0 {
		t.Fatalf("rejected create persisted %d employments", len(employments))
	}
}

func TestEmploymentsCreateAndGet(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	body := `{"user_id":1,"category_id":2,"title":"Mason","description":"Brick work","location":"Nairobi","salary_range":50000}`
	rr := doRequest(t, router, http.MethodPost, "/employments/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeBody(t, rr)
	if resp["message"] != "Employment created successfully" {
		t.Fatalf("message = %v", resp["message"])
	}

	rr = doRequest(t, router, http.MethodGet, "/employments/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rr.Code, rr.Body.String())
	}
	got := decodeBody(t, rr)
	if got["title"] != "Mason" || got["description"] != "Brick work" {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if got["location"] != "Nairobi" || got["salary_range"] != float64(50000) {
		t.Fatalf("optional fields lost: %v", got)
	}
	if got["requirements"] != nil {
		t.Fatalf("requirements = %v, want null", got["requirements"])
	}
}

func TestEmploymentsGetUnknown(t *testing.T) {
	router := newTestRouter(newTestApp())

	rr := doRequest(t, router, http.MethodGet, "/employments/99", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Employment not found" {
		t.Fatalf("message = %v", msg)
	}
}

func TestEmploymentsPartialUpdate(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	doRequest(t, router, http.MethodPost, "/employments/", `{"user_id":1,"category_id":2,"title":"Mason","description":"Brick work","location":"Nairobi"}`)

	rr := doRequest(t, router, http.MethodPut, "/employments/1", `{"title":"Senior Mason"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Employment updated successfully" {
		t.Fatalf("message = %v", msg)
	}

	got := decodeBody(t, doRequest(t, router, http.MethodGet, "/employments/1", ""))
	if got["title"] != "Senior Mason" {
		t.Fatalf("title = %v, want Senior Mason", got["title"])
	}
	if got["location"] != "Nairobi" || got["description"] != "Brick work" {
		t.Fatalf("untouched fields changed: %v", got)
	}
}

func TestEmploymentsDelete(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	doRequest(t, router, http.MethodPost, "/employments/", `{"user_id":1,"category_id":2,"title":"Mason","description":"Brick work"}`)

	rr := doRequest(t, router, http.MethodDelete, "/employments/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rr.Code)
	}

	rr = doRequest(t, router, http.MethodDelete, "/employments/1", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rr.Code)
	}
}
