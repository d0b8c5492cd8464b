package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Route is a canned response served by a TestTarget.
type Route struct {
	Status int
	Body   string
	Header http.Header
}

// TestTarget is a fake web origin backed by httptest. Paths without a route
// answer 404. Every request path is recorded in arrival order.
type TestTarget struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]Route
	requests []string
	origins  []string
	t        *testing.T
}

// NewTestTarget starts a fake target that is closed when the test ends.
// Usage:
//
//	target := testutil.NewTestTarget(t).
//		WithRoute("/.git/HEAD", testutil.Route{Status: 200, Body: "ref: refs/heads/main"})
func NewTestTarget(t *testing.T) *TestTarget {
	t.Helper()

	target := &TestTarget{
		routes: map[string]Route{},
		t:      t,
	}
	target.Server = httptest.NewServer(http.HandlerFunc(target.serve))
	t.Cleanup(target.Server.Close)
	return target
}

// URL returns the base URL of the fake target.
func (tt *TestTarget) URL() string {
	return tt.Server.URL
}

// WithRoute registers a canned response for path.
func (tt *TestTarget) WithRoute(path string, route Route) *TestTarget {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if route.Status == 0 {
		route.Status = http.StatusOK
	}
	tt.routes[path] = route
	return tt
}

// WithRootHeaders sets response headers on "/" with a 200 status.
func (tt *TestTarget) WithRootHeaders(header http.Header) *TestTarget {
	return tt.WithRoute("/", Route{Status: http.StatusOK, Header: header})
}

// Requests returns the request paths seen so far.
func (tt *TestTarget) Requests() []string {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return append([]string(nil), tt.requests...)
}

// Origins returns the Origin header of every request, empty when absent.
func (tt *TestTarget) Origins() []string {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return append([]string(nil), tt.origins...)
}

// MustHaveRequested fails the test if path was never requested.
func (tt *TestTarget) MustHaveRequested(path string) {
	tt.t.Helper()
	for _, p := range tt.Requests() {
		if p == path {
			return
		}
	}
	tt.t.Fatalf("expected %s to be requested, got %v", path, tt.Requests())
}

// MustNotHaveRequested fails the test if path was requested.
func (tt *TestTarget) MustNotHaveRequested(path string) {
	tt.t.Helper()
	for _, p := range tt.Requests() {
		if p == path {
			tt.t.Fatalf("expected %s not to be requested, got %v", path, tt.Requests())
		}
	}
}

func (tt *TestTarget) serve(w http.ResponseWriter, r *http.Request) {
	tt.mu.Lock()
	tt.requests = append(tt.requests, r.URL.Path)
	tt.origins = append(tt.origins, r.Header.Get("Origin"))
	route, ok := tt.routes[r.URL.Path]
	tt.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	for key, values := range route.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(route.Status)
	_, _ = w.Write([]byte(route.Body))
}
