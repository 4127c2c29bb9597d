// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/H0llyW00dzZ/certificate-info/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/certificate-info/src/version"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Resolver returns the classified record of a hostname's certificate.
// [cache.Cache] is the production implementation.
type Resolver interface {
	GetOrFetch(ctx context.Context, hostname string) (certinfo.Record, error)
}

// Option configures a Server.
type Option func(*Server)

// WithThresholds sets the expiration windows applied to responses.
func WithThresholds(t certinfo.Thresholds) Option {
	return func(s *Server) { s.thresholds = t }
}

// WithClock replaces the clock used to compute expiration urgency.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger sets the request and fetch logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Server) { s.log = log }
}

// Server is the HTTP classification service.
type Server struct {
	resolver   Resolver
	thresholds certinfo.Thresholds
	now        func() time.Time
	log        *logrus.Entry
	router     *mux.Router
	httpServer *http.Server
}

// New creates a Server listening on address once Run is called.
func New(resolver Resolver, address string, opts ...Option) *Server {
	s := &Server{
		resolver:   resolver,
		thresholds: certinfo.DefaultThresholds,
		now:        time.Now,
		log:        logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(Log(s.log))
	r.HandleFunc("/", s.banner).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/cert", s.cert).Methods(http.MethodGet)
	r.HandleFunc("/validate", s.cert).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	s.router = r

	s.httpServer = &http.Server{
		Addr:              address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured address and blocks until Close.
func (s *Server) Run() error {
	s.log.Infof("certificate-info %s listening on %s", version.Version, s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Serve accepts connections on ln and blocks until Close.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	s.httpServer.SetKeepAlivesEnabled(false)
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "certificate-info %s", version.Version)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

func (s *Server) cert(w http.ResponseWriter, r *http.Request) {
	hostname, err := hostFromRequest(r)
	if err != nil {
		writeJSON(w, errToHTTPStatus(err), errorMessage{Message: "Invalid parameters"})
		return
	}

	rec, err := s.resolver.GetOrFetch(r.Context(), hostname)
	if err != nil {
		if errors.Is(err, certinfo.ErrClientRequest) {
			writeJSON(w, http.StatusBadRequest, errorMessage{Message: "Invalid parameters"})
			return
		}
		s.log.WithField("host", hostname).WithError(err).Info("certificate fetch failed")
		// Empty 200 body signals a fetch failure to clients.
		w.WriteHeader(http.StatusOK)
		return
	}

	c := certinfo.Evaluate(rec, s.now(), s.thresholds)
	writeJSON(w, http.StatusOK, certinfo.NewPayload(c))
}

type errorMessage struct {
	Message string `json:"message"`
}

// writeJSON encodes v through a pooled buffer and writes it with status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
