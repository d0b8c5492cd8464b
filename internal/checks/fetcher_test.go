package checks

import (
	"context"
	"errors"
	"net/http"

	"github.com/khanhnv2901/quickwins/internal/probe"
)

// stubResponse describes what fakeFetcher returns for a URL.
type stubResponse struct {
	status int
	body   string
	header http.Header
	err    error
}

// fakeFetcher serves canned responses keyed by URL and records every call.
// URLs with no entry answer 404.
type fakeFetcher struct {
	responses map[string]stubResponse
	calls     []string
	headers   []http.Header
}

func newFakeFetcher(responses map[string]stubResponse) *fakeFetcher {
	return &fakeFetcher{responses: responses}
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string, extra http.Header) (*probe.Response, error) {
	f.calls = append(f.calls, rawURL)
	f.headers = append(f.headers, extra)

	stub, ok := f.responses[rawURL]
	if !ok {
		return &probe.Response{URL: rawURL, StatusCode: http.StatusNotFound, Header: http.Header{}}, nil
	}
	if stub.err != nil {
		return nil, stub.err
	}
	header := stub.header
	if header == nil {
		header = http.Header{}
	}
	return &probe.Response{URL: rawURL, StatusCode: stub.status, Header: header, Body: stub.body}, nil
}

// failingFetcher fails every request at the transport layer.
type failingFetcher struct {
	calls int
}

var errConnRefused = errors.New("connection refused")

func (f *failingFetcher) Fetch(context.Context, string, http.Header) (*probe.Response, error) {
	f.calls++
	return nil, errConnRefused
}

const testTarget = "https://target.test"
