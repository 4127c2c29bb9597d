// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// ResponseInterceptor records the status and non-2xx body of a response.
type ResponseInterceptor struct {
	writer http.ResponseWriter
	Status int
	Body   []byte
}

// NewResponseInterceptor wraps w.
func NewResponseInterceptor(w http.ResponseWriter) *ResponseInterceptor {
	return &ResponseInterceptor{writer: w, Status: http.StatusOK}
}

func (r *ResponseInterceptor) WriteHeader(status int) {
	r.Status = status
	r.writer.WriteHeader(status)
}

func (r *ResponseInterceptor) Write(b []byte) (int, error) {
	if r.Status/100 != 2 {
		r.Body = append(r.Body, b...)
	}
	return r.writer.Write(b)
}

func (r *ResponseInterceptor) Header() http.Header {
	return r.writer.Header()
}

// Returned describes the response for the request log.
func (r *ResponseInterceptor) Returned() string {
	if len(r.Body) > 0 {
		return fmt.Sprintf("%d %s", r.Status, string(r.Body))
	}
	return fmt.Sprintf("%d", r.Status)
}

// IsSystemError reports a 5xx status.
func (r *ResponseInterceptor) IsSystemError() bool {
	return r.Status/100 == 5
}

// Log returns middleware that tags each request with an ID and logs its outcome.
// An incoming X-Request-Id is kept; otherwise a random UUID is assigned.
func Log(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			entry := log.WithField("request_id", id)
			interceptor := NewResponseInterceptor(w)
			start := time.Now()

			entry.Debugf("Request %s %s started.", r.Method, r.URL.Path)
			next.ServeHTTP(interceptor, r)

			entry = entry.WithField("duration", time.Since(start).String())
			if interceptor.IsSystemError() {
				entry.Errorf("Request %s %s returned %s", r.Method, r.URL.Path, interceptor.Returned())
			} else {
				entry.Debugf("Request %s %s returned %s", r.Method, r.URL.Path, interceptor.Returned())
			}
		})
	}
}
