// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"errors"
	"net/http"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
)

// errToHTTPStatus maps request errors to status codes.
func errToHTTPStatus(err error) int {
	if errors.Is(err, certinfo.ErrClientRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
