// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/cache"
	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// fakeResolver answers from a fixed table and records queried hostnames.
type fakeResolver struct {
	mu      sync.Mutex
	records map[string]certinfo.Record
	err     error
	queried []string
}

func (f *fakeResolver) GetOrFetch(_ context.Context, hostname string) (certinfo.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queried = append(f.queried, hostname)
	if f.err != nil {
		return certinfo.Record{}, f.err
	}
	rec, ok := f.records[hostname]
	if !ok {
		return certinfo.Record{}, certinfo.ErrNetwork
	}
	return certinfo.Classify(rec), nil
}

// fakeFetcher satisfies cache.Fetcher.
type fakeFetcher struct{ rec certinfo.Record }

func (f fakeFetcher) Fetch(context.Context, string) (certinfo.Record, error) { return f.rec, nil }

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newTestServer(r Resolver) *Server {
	return New(r, "127.0.0.1:0", WithClock(func() time.Time { return fixedNow }), WithLogger(quietLogger()))
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCertEndpoint(t *testing.T) {
	resolver := &fakeResolver{records: map[string]certinfo.Record{
		"example.com": {
			SubjectCommonName:  "example.com",
			IssuerOrganization: "Let's Encrypt",
			IssuerCommonName:   "R3",
			NotAfter:           fixedNow.Add(10*24*time.Hour + time.Hour),
		},
		"bank.example": {
			SubjectCommonName:   "bank.example",
			SubjectOrganization: "Bank Inc.",
			IssuerOrganization:  "DigiCert Inc",
			NotAfter:            fixedNow.Add(400 * 24 * time.Hour),
		},
	}}
	s := newTestServer(resolver)

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "DV close to expiry",
			testFunc: func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/cert?host=example.com", nil))
				require.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

				var p certinfo.Payload
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &p))
				assert.Equal(t, "DV", p.ValidationLevelShort)
				assert.Equal(t, "DV", p.ValidationResultShort)
				assert.Equal(t, "ExpirationError", p.Expiration)
				require.NotNil(t, p.DaysUntilExpiry)
				assert.Equal(t, 10, *p.DaysUntilExpiry)
				assert.Equal(t, "Let's Encrypt", p.IssuerOrganization)
			},
		},
		{
			name: "IV through validate alias and header",
			testFunc: func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/validate", nil)
				req.Header.Set(ValidateHostHeader, "BANK.example")
				resp := do(t, s, req)
				require.Equal(t, http.StatusOK, resp.Code)

				var p certinfo.Payload
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &p))
				assert.Equal(t, "IV", p.ValidationLevelShort)
				assert.Equal(t, "Bank Inc.", p.SubjectOrganization)
				assert.Empty(t, p.Expiration)
			},
		},
		{
			name: "Host from url parameter",
			testFunc: func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/cert?url=https%3A%2F%2Fexample.com%3A443%2Fpath%3Fq%3D1", nil))
				require.Equal(t, http.StatusOK, resp.Code)
				assert.NotEmpty(t, resp.Body.Bytes())
			},
		},
		{
			name: "Fetch failure yields empty body",
			testFunc: func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/cert?host=unreachable.example", nil))
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Empty(t, resp.Body.Bytes())
			},
		},
		{
			name: "Request ID assigned",
			testFunc: func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))
				assert.Equal(t, "ok", resp.Body.String())
				assert.NotEmpty(t, resp.Header().Get(RequestIDHeader))

				req := httptest.NewRequest(http.MethodGet, "/health", nil)
				req.Header.Set(RequestIDHeader, "abc-123")
				resp = do(t, s, req)
				assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
			},
		},
		{
			name: "Banner",
			testFunc: func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Contains(t, resp.Body.String(), "certificate-info")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "Missing host", target: "/cert"},
		{name: "Blank host", target: "/cert?host=%20%20"},
		{name: "Relative url", target: "/cert?url=example.com"},
		{name: "Underscore label rejected by IDNA", target: "/cert?host=bad_host!.example"},
		{name: "Label too long", target: "/cert?host=" + string(bytes.Repeat([]byte("a"), 64)) + ".example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{}
			s := newTestServer(resolver)

			resp := do(t, s, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.JSONEq(t, `{"message":"Invalid parameters"}`, resp.Body.String())
			assert.Empty(t, resolver.queried, "invalid input must not reach the resolver")
		})
	}
}

func TestMetricsWithCache(t *testing.T) {
	c := cache.New(fakeFetcher{rec: certinfo.Record{SubjectCommonName: "example.com", NotAfter: fixedNow.Add(90 * 24 * time.Hour)}}, cache.Config{})
	s := newTestServer(c)

	for range 2 {
		resp := do(t, s, httptest.NewRequest(http.MethodGet, "/cert?host=example.com", nil))
		require.Equal(t, http.StatusOK, resp.Code)
	}
	assert.Equal(t, int64(1), c.Metrics().Hits)

	resp := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "certinfo_cache_lookups_total")
}

func TestServeAndClose(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := newTestServer(&fakeResolver{})
	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Close(ctx))
	assert.NoError(t, <-done, "Serve should return nil after Close")
}

func TestErrToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errToHTTPStatus(certinfo.ErrClientRequest))
	assert.Equal(t, http.StatusInternalServerError, errToHTTPStatus(certinfo.ErrNetwork))
}
