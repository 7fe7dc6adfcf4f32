package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestPages(t *testing.T) {
	a := newTestApp(t)
	a.do(t, "POST", "/api/listings",
		`{"title":"Gangnam Dental","location":"Seoul","category":"dental","price":"50000","description":"d","highlights":["night hours"]}`, adminPassword)
	a.do(t, "POST", "/api/listings",
		`{"title":"Busan Rehab","location":"Busan","category":"rehab","price":"70000","description":"d"}`, adminPassword)

	resp, body := a.do(t, "GET", "/", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home: want 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "Gangnam Dental") || !strings.Contains(string(body), "night hours") {
		t.Fatalf("home should list the catalog, body=%s", body)
	}

	_, body = a.do(t, "GET", "/?category=rehab", "", "")
	if strings.Contains(string(body), "Gangnam Dental") || !strings.Contains(string(body), "Busan Rehab") {
		t.Fatalf("category filter not applied, body=%s", body)
	}

	resp, body = a.do(t, "GET", "/admin", "", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "X-Admin-Password") {
		t.Fatalf("admin page: %d %s", resp.StatusCode, body)
	}

	resp, body = a.do(t, "GET", "/assets/css/site.css", "", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), ".listing") {
		t.Fatalf("static asset: %d", resp.StatusCode)
	}

	resp, body = a.do(t, "GET", "/healthz", "", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"ok":true`) {
		t.Fatalf("healthz: %d %s", resp.StatusCode, body)
	}
}
