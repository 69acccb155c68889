// Package testkit provides test doubles for the outbound HTTP layer.
//
// MockTransport implements http.RoundTripper: it matches outgoing requests
// against programmed stubs and returns synthetic responses instead of making
// real network calls.
//
//	mt := testkit.NewMockTransport().
//	    Stub("GET", "/product/get", 200, `[{"_id":"1","name":"Pen","price":2.5}]`)
//	defer mt.Install()()
//
//	// ... exercise code that calls the backend ...
//
//	mt.AssertCalled(t, "GET", "/product/get")
package testkit

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// Stub is one programmed response. URLPart matches by substring so tests can
// stub by path without caring about the origin.
type Stub struct {
	Method  string
	URLPart string
	Status  int
	Body    string
	Err     error // when set, RoundTrip fails with this transport error
}

// Call records one intercepted request.
type Call struct {
	Method string
	URL    string
	Body   string
}

// MockTransport is a programmable http.RoundTripper.
type MockTransport struct {
	mu    sync.Mutex
	stubs []Stub
	calls []Call
}

// NewMockTransport returns an empty transport; unstubbed calls get a 404.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Stub programs a synthetic response for method + URL substring.
// Later stubs win over earlier ones for the same match.
func (mt *MockTransport) Stub(method, urlPart string, status int, body string) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, Stub{Method: method, URLPart: urlPart, Status: status, Body: body})
	return mt
}

// StubError programs a transport-level failure (timeout, refused connection).
func (mt *MockTransport) StubError(method, urlPart string, err error) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, Stub{Method: method, URLPart: urlPart, Err: err})
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		req.Body.Close()
		body = string(raw)
	}

	mt.mu.Lock()
	mt.calls = append(mt.calls, Call{Method: req.Method, URL: req.URL.String(), Body: body})

	var matched *Stub
	for i := range mt.stubs {
		s := &mt.stubs[i]
		if s.Method == req.Method && strings.Contains(req.URL.String(), s.URLPart) {
			matched = s
		}
	}
	mt.mu.Unlock()

	if matched == nil {
		return synthetic(req, http.StatusNotFound, `{"error":"no stub configured"}`), nil
	}
	if matched.Err != nil {
		return nil, matched.Err
	}
	return synthetic(req, matched.Status, matched.Body), nil
}

// Calls returns a copy of every intercepted request, in order.
func (mt *MockTransport) Calls() []Call {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	out := make([]Call, len(mt.calls))
	copy(out, mt.calls)
	return out
}

// CallCount counts intercepted requests matching method + URL substring.
func (mt *MockTransport) CallCount(method, urlPart string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	n := 0
	for _, c := range mt.calls {
		if c.Method == method && strings.Contains(c.URL, urlPart) {
			n++
		}
	}
	return n
}

func synthetic(req *http.Request, status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}
