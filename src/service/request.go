// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateHostHeader is an alternative to the host query parameter.
const ValidateHostHeader = "X-Validate-Host"

// certRequest is a classification query after hostname normalization.
type certRequest struct {
	Host string
}

func (r certRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Host, validation.Required, validation.Length(1, 253), is.Host),
	)
}

// hostFromRequest extracts and normalizes the queried hostname.
// Precedence: host parameter, X-Validate-Host header, url parameter.
func hostFromRequest(r *http.Request) (string, error) {
	q := r.URL.Query()

	raw := strings.TrimSpace(q.Get("host"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get(ValidateHostHeader))
	}
	if raw == "" {
		if target := strings.TrimSpace(q.Get("url")); target != "" {
			u, err := url.Parse(target)
			if err != nil || u.Host == "" {
				return "", fmt.Errorf("%w: url parameter is not an absolute URL", certinfo.ErrClientRequest)
			}
			raw = u.Host
		}
	}
	if raw == "" {
		return "", fmt.Errorf("%w: host is required", certinfo.ErrClientRequest)
	}

	hostname, err := certinfo.NormalizeHostname(raw)
	if err != nil {
		return "", err
	}

	req := certRequest{Host: hostname}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", certinfo.ErrClientRequest, err.Error())
	}
	return req.Host, nil
}
