package handlers_test

import (
	"net/http"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"medcatalog/internal/config"
)

// Writes without a valid credential fail and leave the store byte-for-byte unchanged.
func TestWritesRequireAdmin(t *testing.T) {
	a := newTestApp(t)
	_, body := a.do(t, "POST", "/api/listings", listingA, adminPassword)
	var created struct{ ID string }
	decodeInto(t, body, &created)

	before, err := os.ReadFile(a.listingsFile())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct{ method, path, body string }{
		{"POST", "/api/listings", listingA},
		{"PUT", "/api/listings/" + created.ID, listingA},
		{"DELETE", "/api/listings/" + created.ID, ""},
		{"POST", "/api/consultations", `{"name":"Kim","email":"kim@example.com","message":"m"}`},
	}
	for _, tc := range cases {
		for _, pw := range []string{"", "wrong"} {
			resp, body := a.do(t, tc.method, tc.path, tc.body, pw)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("%s %s pw=%q: want 401, got %d", tc.method, tc.path, pw, resp.StatusCode)
			}
			var eb errorBody
			decodeInto(t, body, &eb)
			if eb.Error != "Administrator authentication required" {
				t.Fatalf("unexpected error body: %s", body)
			}
		}
	}

	after, _ := os.ReadFile(a.listingsFile())
	if string(before) != string(after) {
		t.Fatal("store mutated by unauthorized request")
	}
}

// Public browsing works anonymously, but a wrong credential is still refused.
func TestListingReadsAuthOptional(t *testing.T) {
	a := newTestApp(t)

	if resp, _ := a.do(t, "GET", "/api/listings", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("anonymous: want 200, got %d", resp.StatusCode)
	}
	if resp, _ := a.do(t, "GET", "/api/listings", "", adminPassword); resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: want 200, got %d", resp.StatusCode)
	}
	resp, body := a.do(t, "GET", "/api/listings", "", "wrong")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong credential: want 401, got %d", resp.StatusCode)
	}
	var eb errorBody
	decodeInto(t, body, &eb)
	if eb.Error != "Invalid administrator password" {
		t.Fatalf("unexpected error body: %s", body)
	}
}

func TestConsultationReadsRequireAdmin(t *testing.T) {
	a := newTestApp(t)

	for _, pw := range []string{"", "wrong"} {
		if resp, _ := a.do(t, "GET", "/api/consultations", "", pw); resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("pw=%q: want 401, got %d", pw, resp.StatusCode)
		}
	}
	if resp, _ := a.do(t, "GET", "/api/consultations", "", adminPassword); resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: want 200, got %d", resp.StatusCode)
	}
}

func TestBcryptConfiguredSecret(t *testing.T) {
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, func(c *config.Config) { c.AdminPasswordHash = string(h) })

	if resp, _ := a.do(t, "POST", "/api/listings", listingA, "Passw0rd!"); resp.StatusCode != http.StatusCreated {
		t.Fatalf("hashed secret: want 201, got %d", resp.StatusCode)
	}
	if resp, _ := a.do(t, "POST", "/api/listings", listingA, adminPassword); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("plaintext secret with hash configured: want 401, got %d", resp.StatusCode)
	}
}

func TestAccessDeniedIsLogged(t *testing.T) {
	a := newTestApp(t)

	entries := captureLogs(t, func() {
		a.do(t, "DELETE", "/api/listings/abc", "", "wrong")
	})
	if !hasAction(entries, "access.denied.admin") {
		t.Fatalf("expected access.denied.admin log, got %+v", entries)
	}

	entries = captureLogs(t, func() {
		a.do(t, "POST", "/api/listings", listingA, adminPassword)
	})
	if !hasAction(entries, "listing.create") {
		t.Fatalf("expected listing.create audit log, got %+v", entries)
	}
}

// Create audits carry the 201 the client receives.
func TestCreateAuditLogsCreatedStatus(t *testing.T) {
	a := newTestApp(t)

	entries := captureLogs(t, func() {
		a.do(t, "POST", "/api/listings", listingA, adminPassword)
		a.do(t, "POST", "/api/consultations", `{"name":"Kim","email":"kim@example.com","message":"hi"}`, adminPassword)
	})
	for _, action := range []string{"listing.create", "consultation.create"} {
		e, ok := findAction(entries, action)
		if !ok {
			t.Fatalf("expected %s audit log, got %+v", action, entries)
		}
		if e.Level != "audit" || e.Status != http.StatusCreated {
			t.Fatalf("%s: want audit with status 201, got %+v", action, e)
		}
	}
}
