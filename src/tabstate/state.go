// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tabstate

import (
	"net/url"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
)

// TabID identifies a browser tab.
type TabID int

// Protocol is the scheme class of a tab's loaded page.
type Protocol int

const (
	// ProtocolNone covers no page and non-web schemes.
	ProtocolNone Protocol = iota
	// ProtocolHTTP is a plaintext page.
	ProtocolHTTP
	// ProtocolHTTPS is a TLS page whose certificate gets classified.
	ProtocolHTTPS
)

// String returns NONE, HTTP or HTTPS.
func (p Protocol) String() string {
	switch p {
	case ProtocolHTTP:
		return "HTTP"
	case ProtocolHTTPS:
		return "HTTPS"
	default:
		return "NONE"
	}
}

// ParseURL classifies a page URL and extracts its hostname.
// Only HTTPS URLs yield a hostname.
func ParseURL(raw string) (Protocol, string) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ProtocolNone, ""
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
		if host := u.Hostname(); host != "" {
			return ProtocolHTTPS, host
		}
		return ProtocolNone, ""
	case "http":
		return ProtocolHTTP, ""
	default:
		return ProtocolNone, ""
	}
}

// Phase is the lifecycle position of a tab.
type Phase int

const (
	// PhaseIdle means no entry exists for the tab.
	PhaseIdle Phase = iota
	// PhaseLoading means an HTTPS query is outstanding.
	PhaseLoading
	// PhaseResolved means the tab's current page needs nothing further.
	PhaseResolved
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseResolved:
		return "resolved"
	default:
		return "idle"
	}
}

// TabState is the consolidated state of one tab.
type TabState struct {
	TabID      TabID
	Phase      Phase
	Protocol   Protocol
	Hostname   string
	Result     certinfo.Result
	Generation uint64
	UpdatedAt  time.Time
}

// Idle returns the state of a tab without an entry.
func Idle(id TabID) TabState {
	return TabState{TabID: id, Phase: PhaseIdle, Protocol: ProtocolNone}
}
