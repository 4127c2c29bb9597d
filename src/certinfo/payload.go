// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Payload is the JSON document returned by the classification service.
//
// The validation_result fields mirror validation_level for clients that
// predate the rename; both are always populated.
type Payload struct {
	ValidationLevel       string `json:"validation_level"`
	ValidationLevelShort  string `json:"validation_level_short"`
	ValidationResult      string `json:"validation_result"`
	ValidationResultShort string `json:"validation_result_short"`
	ResultColor           string `json:"result_color"`
	ResultColorHex        string `json:"result_color_hex"`
	SubjectCommonName     string `json:"subject_common_name"`
	SubjectOrganization   string `json:"subject_organization"`
	IssuerOrganization    string `json:"issuer_organization"`
	IssuerCommonName      string `json:"issuer_common_name"`
	NotAfter              string `json:"not_after,omitempty"`
	DaysUntilExpiry       *int   `json:"days_until_expiry,omitempty"`
	Expiration            string `json:"expiration,omitempty"`
	Message               string `json:"message"`
}

// NewPayload renders a classification for the wire.
func NewPayload(c Classification) Payload {
	level := c.ValidationLevel
	p := Payload{
		ValidationLevel:       level.Title(),
		ValidationLevelShort:  level.Short(),
		ValidationResult:      level.Title(),
		ValidationResultShort: level.Short(),
		ResultColor:           level.Color(),
		ResultColorHex:        level.ColorHex(),
		SubjectCommonName:     c.SubjectCommonName,
		SubjectOrganization:   c.SubjectOrganization,
		IssuerOrganization:    c.IssuerOrganization,
		IssuerCommonName:      c.IssuerCommonName,
		Expiration:            c.Expiration.String(),
		Message:               c.Message(),
	}
	if !c.NotAfter.IsZero() {
		p.NotAfter = c.NotAfter.UTC().Format(time.RFC3339)
		days := c.DaysUntil
		p.DaysUntilExpiry = &days
	}
	return p
}

// Marshal encodes the payload as JSON.
func (p Payload) Marshal() ([]byte, error) { return json.Marshal(p) }

// ParsePayload decodes a service response body into a classification
// evaluated at now with the caller's thresholds.
//
// An empty body yields [ErrFetchFailed]. A body that is not a valid payload
// yields [ErrParse]. An unparsable not_after is not an error: the expiration
// urgency is simply omitted.
func ParsePayload(body []byte, now time.Time, t Thresholds) (Classification, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Classification{}, ErrFetchFailed
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Classification{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	short := p.ValidationLevelShort
	if short == "" {
		short = p.ValidationResultShort
	}
	if _, ok := ParseValidationLevel(short); !ok {
		return Classification{}, fmt.Errorf("%w: unknown validation level %q", ErrParse, short)
	}

	rec := Record{
		SubjectCommonName:   p.SubjectCommonName,
		SubjectOrganization: p.SubjectOrganization,
		IssuerOrganization:  p.IssuerOrganization,
		IssuerCommonName:    p.IssuerCommonName,
	}
	if notAfter, err := time.Parse(time.RFC3339, p.NotAfter); err == nil {
		rec.NotAfter = notAfter
	}

	c := Evaluate(rec, now, t)
	// The service is authoritative for the level; it may have seen
	// attributes that were not carried in the payload.
	c.ValidationLevel, _ = ParseValidationLevel(short)
	return c, nil
}
