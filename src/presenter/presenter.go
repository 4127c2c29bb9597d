// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package presenter maps tab state to badge and popup output.
// [Present] is pure: it reads a [tabstate.TabState] and never mutates it.
package presenter

import (
	"fmt"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/H0llyW00dzZ/certificate-info/src/tabstate"
)

// Badge colors.
const (
	ColorNeutral = "#757575"
	ColorWarning = "#FFC107"
	ColorError   = "#FF1744"
)

// Badge glyphs.
const (
	GlyphLoading   = "..."
	GlyphPlaintext = "i"
	GlyphError     = "!"
	GlyphClock     = "⏰"
)

// Popup texts.
const (
	TitleNoPage    = "No HTTP(S) page loaded"
	MessageNoPage  = "Certificate information will display here when you open an HTTPS page."
	TitlePlaintext = "HTTP Page"
	MessagePlain   = "Data sent to / received from this site is transmitted in plaintext."
	TitleLoading   = "Loading"
	TitleFetchErr  = "Data fetch error"
)

// Badge is the per-tab indicator. A cleared badge shows nothing.
type Badge struct {
	Text    string `json:"text"`
	Color   string `json:"color,omitempty"`
	Cleared bool   `json:"cleared,omitempty"`
}

// Popup is the on-demand detail view.
type Popup struct {
	Title        string `json:"title"`
	TitleColor   string `json:"titleColor"`
	Organization string `json:"organization,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Message      string `json:"message"`
}

// View is the complete visual output for one tab.
type View struct {
	TabID tabstate.TabID `json:"tabId"`
	Badge Badge          `json:"badge"`
	Popup Popup          `json:"popup"`
}

// Present renders st.
func Present(st tabstate.TabState) View {
	v := View{TabID: st.TabID}

	switch st.Protocol {
	case tabstate.ProtocolHTTP:
		v.Badge = Badge{Text: GlyphPlaintext, Color: ColorWarning}
		v.Popup = Popup{Title: TitlePlaintext, TitleColor: ColorWarning, Message: MessagePlain}
		return v
	case tabstate.ProtocolHTTPS:
	default:
		v.Badge = Badge{Cleared: true}
		v.Popup = Popup{Title: TitleNoPage, TitleColor: ColorNeutral, Message: MessageNoPage}
		return v
	}

	if st.Phase == tabstate.PhaseLoading || st.Result.Status == certinfo.StatusPending {
		v.Badge = Badge{Text: GlyphLoading, Color: ColorNeutral}
		v.Popup = Popup{
			Title:      TitleLoading,
			TitleColor: ColorNeutral,
			Message:    fmt.Sprintf("Retrieving certificate information for %s.", st.Hostname),
		}
		return v
	}

	if st.Result.Status == certinfo.StatusFetchError {
		v.Badge = Badge{Text: GlyphError, Color: ColorError}
		v.Popup = Popup{
			Title:      TitleFetchErr,
			TitleColor: ColorError,
			Message: fmt.Sprintf("Certificate information for %s could not be retrieved. "+
				"It will be fetched again the next time this page is loaded.", st.Hostname),
		}
		return v
	}

	c := st.Result.Classification
	v.Popup = Popup{
		Title:        c.ValidationLevel.Title(),
		Organization: c.SubjectOrganization,
		Issuer:       issuer(c.Record),
		Message:      c.Message(),
	}

	switch c.Expiration {
	case certinfo.Expired, certinfo.ExpirationError:
		v.Badge = Badge{Text: GlyphClock, Color: ColorError}
		v.Popup.TitleColor = ColorError
	case certinfo.ExpirationWarning:
		v.Badge = Badge{Text: GlyphClock, Color: ColorWarning}
		v.Popup.TitleColor = ColorWarning
	default:
		v.Badge = Badge{Text: c.ValidationLevel.Short(), Color: c.ValidationLevel.ColorHex()}
		v.Popup.TitleColor = c.ValidationLevel.ColorHex()
	}
	return v
}

// issuer names the certificate authority, preferring its organization.
func issuer(r certinfo.Record) string {
	name := r.IssuerOrganization
	if name == "" {
		name = r.IssuerCommonName
	}
	if name == "" {
		return ""
	}
	return "Issued by " + name
}
