// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

// Status tags the variant held by a [Result].
type Status int

const (
	// StatusPending means a classification has been requested but not answered.
	StatusPending Status = iota
	// StatusSuccess means Classification is populated.
	StatusSuccess
	// StatusFetchError means the certificate could not be obtained; Err says why.
	StatusFetchError
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFetchError:
		return "fetch_error"
	default:
		return "pending"
	}
}

// Result is the tagged union Success(Classification) | FetchError | Pending.
// A FetchError carries no certificate data.
type Result struct {
	Status         Status
	Classification Classification
	Err            error
}

// Pending returns a Result awaiting its classification.
func Pending() Result { return Result{Status: StatusPending} }

// Success wraps a classification.
func Success(c Classification) Result { return Result{Status: StatusSuccess, Classification: c} }

// FetchError wraps the reason a certificate could not be obtained.
func FetchError(err error) Result {
	if err == nil {
		err = ErrFetchFailed
	}
	return Result{Status: StatusFetchError, Err: err}
}
