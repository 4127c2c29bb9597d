// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"crypto/x509"
	"fmt"
	"maps"
	"strings"
	"time"
)

// ValidationLevel is the coarse validation strength of a certificate.
type ValidationLevel int

const (
	// Unvalidated is the zero level, used before classification or when
	// no certificate could be obtained.
	Unvalidated ValidationLevel = iota
	// DomainValidated means only control over the domain was validated.
	DomainValidated
	// IdentityValidated means the subject carries an Organization attribute.
	IdentityValidated
)

// String returns the enum name of the level.
func (l ValidationLevel) String() string {
	switch l {
	case DomainValidated:
		return "DV"
	case IdentityValidated:
		return "IV"
	default:
		return "UNVALIDATED"
	}
}

// Short returns the badge code of the level ("DV", "IV" or "!").
func (l ValidationLevel) Short() string {
	switch l {
	case DomainValidated, IdentityValidated:
		return l.String()
	default:
		return "!"
	}
}

// Title returns the human readable name of the level.
func (l ValidationLevel) Title() string {
	switch l {
	case DomainValidated:
		return "Domain Control Validated"
	case IdentityValidated:
		return "Identity Validated"
	default:
		return "Not Validated"
	}
}

// Message describes what the level guarantees.
func (l ValidationLevel) Message() string {
	switch l {
	case DomainValidated:
		return "The website operator's control over this domain has been validated."
	case IdentityValidated:
		return "The website operator's identity (organization or individual) has been validated."
	default:
		return "The certificate of this website could not be validated."
	}
}

// Color returns the named color of the level.
func (l ValidationLevel) Color() string {
	switch l {
	case DomainValidated:
		return "yellow"
	case IdentityValidated:
		return "blue"
	default:
		return "red"
	}
}

// ColorHex returns the badge color of the level.
func (l ValidationLevel) ColorHex() string {
	switch l {
	case DomainValidated:
		return "#FF9800"
	case IdentityValidated:
		return "#2196F3"
	default:
		return "#FF1744"
	}
}

// ParseValidationLevel maps a short code back to its level.
func ParseValidationLevel(short string) (ValidationLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(short)) {
	case "DV":
		return DomainValidated, true
	case "IV":
		return IdentityValidated, true
	default:
		return Unvalidated, false
	}
}

// Record is the certificate metadata the classifier works on.
// A Record is treated as immutable once constructed; [Classify] and
// [Record.Clone] return copies that share nothing with the receiver.
type Record struct {
	SubjectCommonName   string
	SubjectOrganization string
	IssuerOrganization  string
	IssuerCommonName    string
	NotAfter            time.Time
	ValidationLevel     ValidationLevel
	Raw                 map[string]string
}

// FromCertificate builds an unclassified Record from a leaf certificate.
//
// A certificate whose subject carries no attributes and no DNS names is
// rejected with [ErrMalformedCertificate].
func FromCertificate(cert *x509.Certificate) (Record, error) {
	if cert == nil {
		return Record{}, fmt.Errorf("%w: no peer certificate", ErrMalformedCertificate)
	}
	if len(cert.Subject.Names) == 0 && len(cert.DNSNames) == 0 {
		return Record{}, fmt.Errorf("%w: empty subject", ErrMalformedCertificate)
	}

	rec := Record{
		SubjectCommonName: cert.Subject.CommonName,
		IssuerCommonName:  cert.Issuer.CommonName,
		NotAfter:          cert.NotAfter,
		Raw: map[string]string{
			"subject":             cert.Subject.String(),
			"issuer":              cert.Issuer.String(),
			"serial_number":       cert.SerialNumber.String(),
			"not_before":          cert.NotBefore.UTC().Format(time.RFC3339),
			"signature_algorithm": cert.SignatureAlgorithm.String(),
			"dns_names":           strings.Join(cert.DNSNames, ","),
		},
	}
	if len(cert.Subject.Organization) > 0 {
		rec.SubjectOrganization = cert.Subject.Organization[0]
	}
	if len(cert.Issuer.Organization) > 0 {
		rec.IssuerOrganization = cert.Issuer.Organization[0]
	}
	return rec, nil
}

// Classify returns rec with its validation level derived from the subject
// Organization: IV when present and non-empty, DV otherwise.
func Classify(rec Record) Record {
	rec = rec.Clone()
	if strings.TrimSpace(rec.SubjectOrganization) != "" {
		rec.ValidationLevel = IdentityValidated
	} else {
		rec.ValidationLevel = DomainValidated
	}
	return rec
}

// Clone returns a copy of rec with its own Raw map.
func (rec Record) Clone() Record {
	rec.Raw = maps.Clone(rec.Raw)
	return rec
}
