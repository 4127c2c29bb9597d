// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tabstate

import (
	"sync"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
)

// Store holds per-tab state.
//
// Thread Safety: Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	tabs map[TabID]TabState
	seq  uint64
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tabs: make(map[TabID]TabState), now: time.Now}
}

// Navigate records that tabID now shows rawURL.
//
// Returns:
//   - TabState: The state after the transition
//   - bool: True when an HTTPS query must be issued for the returned
//     state's Hostname, tagged with its Generation
//
// An empty rawURL causes no transition; the current state is returned.
func (s *Store) Navigate(id TabID, rawURL string) (TabState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rawURL == "" {
		if st, ok := s.tabs[id]; ok {
			return st, false
		}
		return Idle(id), false
	}

	protocol, hostname := ParseURL(rawURL)
	s.seq++
	st := TabState{
		TabID:      id,
		Protocol:   protocol,
		Hostname:   hostname,
		Generation: s.seq,
		UpdatedAt:  s.now(),
	}

	if protocol == ProtocolHTTPS {
		st.Phase = PhaseLoading
		st.Result = certinfo.Pending()
	} else {
		st.Phase = PhaseResolved
	}

	s.tabs[id] = st
	return st, protocol == ProtocolHTTPS
}

// Complete applies the result of the query tagged gen.
// It returns the new state and true only when gen is the tab's current
// generation; stale results and results for closed tabs are discarded.
func (s *Store) Complete(id TabID, gen uint64, result certinfo.Result) (TabState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.tabs[id]
	if !ok || st.Generation != gen || st.Protocol != ProtocolHTTPS {
		return TabState{}, false
	}

	st.Result = result
	st.Phase = PhaseResolved
	st.UpdatedAt = s.now()
	s.tabs[id] = st
	return st, true
}

// Close deletes the tab's entry and reports whether one existed.
func (s *Store) Close(id TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tabs[id]
	delete(s.tabs, id)
	return ok
}

// Get returns the tab's state, or Idle when it has no entry.
func (s *Store) Get(id TabID) TabState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.tabs[id]; ok {
		return st
	}
	return Idle(id)
}

// Len returns the number of tracked tabs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tabs)
}
