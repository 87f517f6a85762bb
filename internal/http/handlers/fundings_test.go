package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestFundingsCreateAndGet(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	body := `{"category_id":3,"grant_name":"Smallholder Fund","grant_type":"ngo","amount":1000000,"description":"Seed capital"}`
	rr := doRequest(t, router, http.MethodPost, "/fundings/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Funding created successfully" {
		t.Fatalf("message = %v", msg)
	}

	got := decodeBody(t, doRequest(t, router, http.MethodGet, "/fundings/1", ""))
	if got["grant_name"] != "Smallholder Fund" || got["grant_type"] != "ngo" {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if got["eligibility_criteria"] != nil {
		t.Fatalf("eligibility_criteria = %v, want null", got["eligibility_criteria"])
	}
}

func TestFundingsCreateInvalidGrantType(t *testing.T) {
	router := newTestRouter(newTestApp())

	rr := doRequest(t, router, http.MethodPost, "/fundings/", `{"category_id":3,"grant_name":"Fund","grant_type":"charity","amount":100}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	msg, _ := decodeBody(t, rr)["message"].(string)
	if !strings.Contains(msg, "not a valid grant type") {
		t.Fatalf("message = %q", msg)
	}
}
