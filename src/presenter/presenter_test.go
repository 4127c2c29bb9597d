// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package presenter_test

import (
	"testing"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/H0llyW00dzZ/certificate-info/src/presenter"
	"github.com/H0llyW00dzZ/certificate-info/src/tabstate"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func resolved(rec certinfo.Record) tabstate.TabState {
	c := certinfo.Evaluate(rec, fixedNow, certinfo.DefaultThresholds)
	return tabstate.TabState{
		TabID:    1,
		Phase:    tabstate.PhaseResolved,
		Protocol: tabstate.ProtocolHTTPS,
		Hostname: "example.com",
		Result:   certinfo.Success(c),
	}
}

func TestPresent(t *testing.T) {
	tests := []struct {
		name    string
		state   tabstate.TabState
		badge   presenter.Badge
		title   string
		message string
	}{
		{
			name:    "No page",
			state:   tabstate.Idle(1),
			badge:   presenter.Badge{Cleared: true},
			title:   presenter.TitleNoPage,
			message: presenter.MessageNoPage,
		},
		{
			name:    "Plaintext page",
			state:   tabstate.TabState{TabID: 1, Phase: tabstate.PhaseResolved, Protocol: tabstate.ProtocolHTTP},
			badge:   presenter.Badge{Text: "i", Color: presenter.ColorWarning},
			title:   presenter.TitlePlaintext,
			message: presenter.MessagePlain,
		},
		{
			name:    "Loading",
			state:   tabstate.TabState{TabID: 1, Phase: tabstate.PhaseLoading, Protocol: tabstate.ProtocolHTTPS, Hostname: "example.com", Result: certinfo.Pending()},
			badge:   presenter.Badge{Text: "...", Color: presenter.ColorNeutral},
			title:   presenter.TitleLoading,
			message: "Retrieving certificate information for example.com.",
		},
		{
			name:    "Fetch error",
			state:   tabstate.TabState{TabID: 1, Phase: tabstate.PhaseResolved, Protocol: tabstate.ProtocolHTTPS, Hostname: "badhost.invalid", Result: certinfo.FetchError(certinfo.ErrTimeout)},
			badge:   presenter.Badge{Text: "!", Color: presenter.ColorError},
			title:   presenter.TitleFetchErr,
			message: "Certificate information for badhost.invalid could not be retrieved. It will be fetched again the next time this page is loaded.",
		},
		{
			name:    "DV expiring in 10 days",
			state:   resolved(certinfo.Record{SubjectCommonName: "example.com", IssuerOrganization: "Let's Encrypt", NotAfter: fixedNow.Add(10*24*time.Hour + time.Hour)}),
			badge:   presenter.Badge{Text: presenter.GlyphClock, Color: presenter.ColorError},
			title:   "Domain Control Validated",
			message: "The certificate of this website expires in 10 days.",
		},
		{
			name:    "Expired",
			state:   resolved(certinfo.Record{SubjectCommonName: "example.com", NotAfter: fixedNow.Add(-3 * 24 * time.Hour)}),
			badge:   presenter.Badge{Text: presenter.GlyphClock, Color: presenter.ColorError},
			title:   "Domain Control Validated",
			message: "The certificate of this website expired 3 days ago.",
		},
		{
			name:    "Warning window",
			state:   resolved(certinfo.Record{SubjectCommonName: "example.com", NotAfter: fixedNow.Add(20 * 24 * time.Hour)}),
			badge:   presenter.Badge{Text: presenter.GlyphClock, Color: presenter.ColorWarning},
			title:   "Domain Control Validated",
			message: "The certificate of this website expires in 20 days.",
		},
		{
			name:    "IV without urgency",
			state:   resolved(certinfo.Record{SubjectCommonName: "bank.example", SubjectOrganization: "Bank Inc.", IssuerOrganization: "DigiCert Inc", NotAfter: fixedNow.Add(300 * 24 * time.Hour)}),
			badge:   presenter.Badge{Text: "IV", Color: "#2196F3"},
			title:   "Identity Validated",
			message: "The website operator's identity (organization or individual) has been validated.",
		},
		{
			name:    "DV without urgency",
			state:   resolved(certinfo.Record{SubjectCommonName: "example.com", NotAfter: fixedNow.Add(300 * 24 * time.Hour)}),
			badge:   presenter.Badge{Text: "DV", Color: "#FF9800"},
			title:   "Domain Control Validated",
			message: "The website operator's control over this domain has been validated.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := presenter.Present(tt.state)
			assert.Equal(t, tt.state.TabID, v.TabID)
			assert.Equal(t, tt.badge, v.Badge)
			assert.Equal(t, tt.title, v.Popup.Title)
			assert.Equal(t, tt.message, v.Popup.Message)
		})
	}
}

func TestPresentDetail(t *testing.T) {
	v := presenter.Present(resolved(certinfo.Record{
		SubjectOrganization: "Bank Inc.",
		IssuerCommonName:    "Bank Issuing CA",
		NotAfter:            fixedNow.Add(300 * 24 * time.Hour),
	}))

	assert.Equal(t, "Bank Inc.", v.Popup.Organization)
	assert.Equal(t, "Issued by Bank Issuing CA", v.Popup.Issuer, "issuer CN is used when the organization is absent")
	assert.Equal(t, "#2196F3", v.Popup.TitleColor)
}

func TestPresentDoesNotMutate(t *testing.T) {
	st := resolved(certinfo.Record{SubjectCommonName: "example.com", NotAfter: fixedNow.Add(5 * 24 * time.Hour)})
	before := st
	_ = presenter.Present(st)
	assert.Equal(t, before, st)
}
