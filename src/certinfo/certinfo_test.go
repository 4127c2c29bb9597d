// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// newCertificate creates a self-signed leaf for the given subject.
func newCertificate(t *testing.T, subject pkix.Name, notAfter time.Time) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "failed to generate key")

	template := &x509.Certificate{
		SerialNumber: big.NewInt(42),
		Subject:      subject,
		NotBefore:    notAfter.Add(-90 * 24 * time.Hour),
		NotAfter:     notAfter,
		DNSNames:     []string{"example.com"},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err, "failed to create certificate")

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err, "failed to parse certificate")
	return cert
}

func TestClassifyValidationLevel(t *testing.T) {
	tests := []struct {
		name     string
		org      string
		expected certinfo.ValidationLevel
	}{
		{name: "Organization present", org: "Example Inc.", expected: certinfo.IdentityValidated},
		{name: "Organization absent", org: "", expected: certinfo.DomainValidated},
		{name: "Organization blank", org: "   ", expected: certinfo.DomainValidated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := certinfo.Classify(certinfo.Record{SubjectOrganization: tt.org})
			assert.Equal(t, tt.expected, rec.ValidationLevel)
		})
	}
}

func TestFromCertificate(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Identity validated subject",
			testFunc: func(t *testing.T) {
				cert := newCertificate(t, pkix.Name{CommonName: "example.com", Organization: []string{"Example Inc."}}, fixedNow.Add(400*24*time.Hour))

				rec, err := certinfo.FromCertificate(cert)
				require.NoError(t, err)

				assert.Equal(t, "example.com", rec.SubjectCommonName)
				assert.Equal(t, "Example Inc.", rec.SubjectOrganization)
				assert.Equal(t, "Example Inc.", rec.IssuerOrganization, "self-signed issuer mirrors subject")
				assert.True(t, rec.NotAfter.Equal(cert.NotAfter))
				assert.Equal(t, certinfo.Unvalidated, rec.ValidationLevel, "FromCertificate must not classify")
				assert.Equal(t, "42", rec.Raw["serial_number"])
				assert.Equal(t, certinfo.IdentityValidated, certinfo.Classify(rec).ValidationLevel)

				classified := certinfo.Classify(rec)
				classified.Raw["serial_number"] = "changed"
				assert.Equal(t, "42", rec.Raw["serial_number"], "Classify must not share Raw")
			},
		},
		{
			name: "Nil certificate",
			testFunc: func(t *testing.T) {
				_, err := certinfo.FromCertificate(nil)
				assert.ErrorIs(t, err, certinfo.ErrMalformedCertificate)
			},
		},
		{
			name: "Empty subject and no SAN",
			testFunc: func(t *testing.T) {
				_, err := certinfo.FromCertificate(&x509.Certificate{SerialNumber: big.NewInt(1)})
				assert.ErrorIs(t, err, certinfo.ErrMalformedCertificate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		notAfter time.Time
		expected int
	}{
		{name: "Exactly ten days", notAfter: fixedNow.Add(10 * 24 * time.Hour), expected: 10},
		{name: "Ten days minus a second", notAfter: fixedNow.Add(10*24*time.Hour - time.Second), expected: 9},
		{name: "Later today", notAfter: fixedNow.Add(5 * time.Hour), expected: 0},
		{name: "One hour ago", notAfter: fixedNow.Add(-time.Hour), expected: -1},
		{name: "Two days ago", notAfter: fixedNow.Add(-48 * time.Hour), expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, certinfo.DaysUntil(tt.notAfter, fixedNow))
		})
	}
}

func TestThresholdsExpiration(t *testing.T) {
	thresholds := certinfo.Thresholds{ErrorDays: 14, WarningDays: 29}
	days := func(n int) time.Time { return fixedNow.Add(time.Duration(n) * 24 * time.Hour) }

	tests := []struct {
		name     string
		notAfter time.Time
		expected certinfo.Expiration
	}{
		{name: "Zero NotAfter omits urgency", notAfter: time.Time{}, expected: certinfo.ExpirationNone},
		{name: "Already expired", notAfter: days(-3), expected: certinfo.Expired},
		{name: "Zero days left", notAfter: fixedNow.Add(time.Hour), expected: certinfo.Expired},
		{name: "One day left", notAfter: days(1), expected: certinfo.ExpirationError},
		{name: "Error boundary", notAfter: days(14), expected: certinfo.ExpirationError},
		{name: "Warning lower bound", notAfter: days(15), expected: certinfo.ExpirationWarning},
		{name: "Warning boundary", notAfter: days(29), expected: certinfo.ExpirationWarning},
		{name: "Past warning window", notAfter: days(30), expected: certinfo.ExpirationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, thresholds.Expiration(tt.notAfter, fixedNow))
		})
	}

	t.Run("Wider warning window", func(t *testing.T) {
		wide := certinfo.Thresholds{ErrorDays: 14, WarningDays: 45}
		assert.Equal(t, certinfo.ExpirationWarning, wide.Expiration(days(40), fixedNow))
	})

	t.Run("Expired is idempotent under a fixed clock", func(t *testing.T) {
		rec := certinfo.Record{NotAfter: days(-1)}
		first := certinfo.Evaluate(rec, fixedNow, thresholds)
		second := certinfo.Evaluate(rec, fixedNow, thresholds)
		assert.Equal(t, certinfo.Expired, first.Expiration)
		assert.Equal(t, first, second)
	})
}

func TestEvaluateScenario(t *testing.T) {
	// example.com, no Organization, ten days left
	rec := certinfo.Record{SubjectCommonName: "example.com", NotAfter: fixedNow.Add(10 * 24 * time.Hour)}

	c := certinfo.Evaluate(rec, fixedNow, certinfo.DefaultThresholds)

	assert.Equal(t, certinfo.DomainValidated, c.ValidationLevel)
	assert.Equal(t, certinfo.ExpirationError, c.Expiration)
	assert.Equal(t, 10, c.DaysUntil)
	assert.Equal(t, "The certificate of this website expires in 10 days.", c.Message())
}

func TestPayloadRoundTrip(t *testing.T) {
	rec := certinfo.Record{
		SubjectCommonName:   "example.com",
		SubjectOrganization: "Example Inc.",
		IssuerOrganization:  "Example CA",
		IssuerCommonName:    "Example CA R1",
		NotAfter:            fixedNow.Add(200 * 24 * time.Hour),
	}
	c := certinfo.Evaluate(rec, fixedNow, certinfo.DefaultThresholds)

	body, err := certinfo.NewPayload(c).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"validation_level":"Identity Validated"`)
	assert.Contains(t, string(body), `"validation_level_short":"IV"`)
	assert.Contains(t, string(body), `"result_color_hex":"#2196F3"`)

	got, err := certinfo.ParsePayload(body, fixedNow, certinfo.DefaultThresholds)
	require.NoError(t, err)
	assert.Equal(t, certinfo.IdentityValidated, got.ValidationLevel)
	assert.Equal(t, "Example CA R1", got.IssuerCommonName)
	assert.True(t, got.NotAfter.Equal(rec.NotAfter))
	assert.Equal(t, certinfo.ExpirationNone, got.Expiration)
}

func TestParsePayloadErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected error
	}{
		{name: "Empty body", body: "", expected: certinfo.ErrFetchFailed},
		{name: "Whitespace body", body: " \n", expected: certinfo.ErrFetchFailed},
		{name: "Not JSON", body: "<html>", expected: certinfo.ErrParse},
		{name: "Missing validation level", body: `{"message":"Invalid parameters"}`, expected: certinfo.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := certinfo.ParsePayload([]byte(tt.body), fixedNow, certinfo.DefaultThresholds)
			assert.True(t, errors.Is(err, tt.expected), "expected %v, got %v", tt.expected, err)
		})
	}

	t.Run("Unparsable not_after omits urgency", func(t *testing.T) {
		c, err := certinfo.ParsePayload([]byte(`{"validation_level_short":"DV","not_after":"soon"}`), fixedNow, certinfo.DefaultThresholds)
		require.NoError(t, err)
		assert.Equal(t, certinfo.DomainValidated, c.ValidationLevel)
		assert.Equal(t, certinfo.ExpirationNone, c.Expiration)
		assert.True(t, c.NotAfter.IsZero())
	})
}

func TestNormalizeHostname(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "Lower-cases", input: "Example.COM", expected: "example.com"},
		{name: "Strips port", input: "example.com:8443", expected: "example.com"},
		{name: "Strips trailing dot", input: "example.com.", expected: "example.com"},
		{name: "Punycode", input: "bücher.example", expected: "xn--bcher-kva.example"},
		{name: "IPv4", input: "127.0.0.1", expected: "127.0.0.1"},
		{name: "Bracketed IPv6 with port", input: "[::1]:443", expected: "::1"},
		{name: "Empty", input: "  ", wantErr: true},
		{name: "Space inside", input: "exa mple.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := certinfo.NormalizeHostname(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, certinfo.ErrClientRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResultVariants(t *testing.T) {
	assert.Equal(t, certinfo.StatusPending, certinfo.Pending().Status)

	failed := certinfo.FetchError(nil)
	assert.Equal(t, certinfo.StatusFetchError, failed.Status)
	assert.ErrorIs(t, failed.Err, certinfo.ErrFetchFailed)

	ok := certinfo.Success(certinfo.Classification{Record: certinfo.Record{ValidationLevel: certinfo.DomainValidated}})
	assert.Equal(t, certinfo.StatusSuccess, ok.Status)
	assert.NoError(t, ok.Err)
}
