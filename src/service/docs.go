// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package service exposes certificate classification over HTTP.
//
// Routes:
//
//	GET /                 banner
//	GET /health           "ok"
//	GET /cert?host=H      classification payload for H
//	GET /validate?host=H  alias of /cert
//	GET /metrics          Prometheus exposition
//
// The hostname may also be given through the x-validate-host header or as an
// absolute URL in the url query parameter. A missing or malformed hostname
// yields 400 with {"message":"Invalid parameters"}. A certificate that could
// not be fetched yields 200 with an empty body, which clients treat as a
// fetch failure.
package service
