package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeSession struct {
	authenticated bool
	staff         bool
	role          string
}

func (f fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f fakeSession) IsStaff() bool         { return f.staff }
func (f fakeSession) HasRole(role string) bool {
	return f.staff || (f.authenticated && f.role == role)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthenticated(t *testing.T) {
	cases := []struct {
		name    string
		session fakeSession
		want    int
	}{
		{"anonymous", fakeSession{}, http.StatusUnauthorized},
		{"authenticated", fakeSession{authenticated: true}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			RequireAuthenticated(tc.session, nil)(okHandler()).ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Fatalf("expected %d but got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	cases := []struct {
		name    string
		session fakeSession
		want    int
	}{
		{"anonymous", fakeSession{}, http.StatusUnauthorized},
		{"customer", fakeSession{authenticated: true}, http.StatusForbidden},
		{"staff", fakeSession{authenticated: true, staff: true}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			RequireStaff(tc.session, nil)(okHandler()).ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Fatalf("expected %d but got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		session fakeSession
		want    int
	}{
		{"wrong role", fakeSession{authenticated: true, role: "accountant"}, http.StatusForbidden},
		{"exact role", fakeSession{authenticated: true, role: "seller"}, http.StatusOK},
		{"staff bypass", fakeSession{authenticated: true, staff: true}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			RequireRole(tc.session, "seller", nil)(okHandler()).ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Fatalf("expected %d but got %d", tc.want, w.Code)
			}
		})
	}
}
