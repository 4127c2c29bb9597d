// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Expiration is the urgency of a certificate's upcoming expiry.
type Expiration int

const (
	// ExpirationNone means no urgency, or an unknown NotAfter.
	ExpirationNone Expiration = iota
	// ExpirationWarning means expiry within the warning window.
	ExpirationWarning
	// ExpirationError means expiry within the error window.
	ExpirationError
	// Expired means the certificate is no longer valid.
	Expired
)

// String returns the wire name of the urgency, empty for none.
func (e Expiration) String() string {
	switch e {
	case ExpirationWarning:
		return "ExpirationWarning"
	case ExpirationError:
		return "ExpirationError"
	case Expired:
		return "Expired"
	default:
		return ""
	}
}

// Thresholds are the day counts that bound the urgency windows.
type Thresholds struct {
	ErrorDays   int
	WarningDays int
}

// DefaultThresholds are used when no configuration overrides them.
// WarningDays has been both 29 and 45 in past releases, so it stays configurable.
var DefaultThresholds = Thresholds{ErrorDays: 14, WarningDays: 29}

// DaysUntil returns floor((notAfter - now) / 24h).
func DaysUntil(notAfter, now time.Time) int {
	d := notAfter.Sub(now)
	days := int(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}

// Expiration classifies notAfter relative to now.
// A zero notAfter yields ExpirationNone.
func (t Thresholds) Expiration(notAfter, now time.Time) Expiration {
	if notAfter.IsZero() {
		return ExpirationNone
	}

	days := DaysUntil(notAfter, now)
	switch {
	case days <= 0:
		return Expired
	case days <= t.ErrorDays:
		return ExpirationError
	case days <= t.WarningDays:
		return ExpirationWarning
	default:
		return ExpirationNone
	}
}

// Classification is a classified Record evaluated at a given instant.
type Classification struct {
	Record
	Expiration Expiration
	DaysUntil  int
}

// Evaluate classifies rec and derives its expiration urgency at now.
func Evaluate(rec Record, now time.Time, t Thresholds) Classification {
	c := Classification{
		Record:     Classify(rec),
		Expiration: t.Expiration(rec.NotAfter, now),
	}
	if !rec.NotAfter.IsZero() {
		c.DaysUntil = DaysUntil(rec.NotAfter, now)
	}
	return c
}

// Message returns the countdown text for an urgent classification,
// or the validation level message otherwise.
func (c Classification) Message() string {
	switch c.Expiration {
	case Expired:
		if c.DaysUntil == 0 {
			return "The certificate of this website expires today."
		}
		return fmt.Sprintf("The certificate of this website expired %s ago.", plural(-c.DaysUntil, "day"))
	case ExpirationError, ExpirationWarning:
		return fmt.Sprintf("The certificate of this website expires in %s.", plural(c.DaysUntil, "day"))
	default:
		return c.ValidationLevel.Message()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
