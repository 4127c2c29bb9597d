// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrNoCertificates indicates input without any certificate block.
	ErrNoCertificates = errors.New("x509certs: no certificates found")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")
)

// certBlockType is the PEM block type holding a certificate.
const certBlockType = "CERTIFICATE"

// Decoder reads certificates from PEM, DER and PKCS7 input.
type Decoder struct{}

// New creates a Decoder.
func New() *Decoder { return &Decoder{} }

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeAll returns every certificate in data, leaf first.
//
// PEM input may interleave other block types (keys, parameters); only
// CERTIFICATE blocks are read. Non-PEM input is parsed as a DER sequence
// and then as PKCS7.
func (d *Decoder) DecodeAll(data []byte) ([]*x509.Certificate, error) {
	if d.IsPEM(data) {
		return d.decodePEM(data)
	}

	if certs, err := x509.ParseCertificates(data); err == nil && len(certs) > 0 {
		return certs, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}
	return p.Content.SignedData.Certificates, nil
}

func (d *Decoder) decodePEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	for {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest

		if block.Type != certBlockType {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}

// Decode returns the leaf certificate of data.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	certs, err := d.DecodeAll(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// Records decodes data and classifies every certificate it holds.
func (d *Decoder) Records(data []byte) ([]certinfo.Record, error) {
	certs, err := d.DecodeAll(data)
	if err != nil {
		return nil, err
	}

	records := make([]certinfo.Record, 0, len(certs))
	for i, cert := range certs {
		rec, err := certinfo.FromCertificate(cert)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i, err)
		}
		records = append(records, certinfo.Classify(rec))
	}
	return records, nil
}

// ReadFile reads and classifies the certificates stored at path.
func (d *Decoder) ReadFile(path string) ([]certinfo.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file: %w", err)
	}
	return d.Records(data)
}
