// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package nativehost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/H0llyW00dzZ/certificate-info/src/presenter"
	"github.com/H0llyW00dzZ/certificate-info/src/tabstate"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Event types.
const (
	EventNavigated = "navigated"
	EventActivated = "activated"
	EventClosed    = "closed"
	EventPopup     = "popup"
)

// Outgoing message types.
const (
	MessageBadge = "badge"
	MessagePopup = "popup"
)

// Event is an incoming browser message.
type Event struct {
	Type  string         `json:"type"`
	TabID tabstate.TabID `json:"tabId"`
	URL   string         `json:"url,omitempty"`
}

// Message is an outgoing render instruction.
type Message struct {
	Type  string           `json:"type"`
	TabID tabstate.TabID   `json:"tabId"`
	Badge *presenter.Badge `json:"badge,omitempty"`
	Popup *presenter.Popup `json:"popup,omitempty"`
}

// Host reads browser events and writes badge and popup updates.
// It is the [tabstate.Sink] of its controller.
type Host struct {
	in         io.Reader
	out        io.Writer
	wmu        sync.Mutex
	controller *tabstate.Controller
	log        *logrus.Entry
}

// New creates a host reading events from in and writing messages to out.
// Queries go through querier; cancel ctx to stop applying results.
func New(ctx context.Context, in io.Reader, out io.Writer, querier tabstate.Querier, log *logrus.Entry, opts ...tabstate.ControllerOption) *Host {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	h := &Host{in: in, out: out, log: log}
	opts = append([]tabstate.ControllerOption{tabstate.WithLogger(log)}, opts...)
	h.controller = tabstate.NewController(ctx, tabstate.NewStore(), querier, h, opts...)
	return h
}

// Run processes events until the input ends or ctx is done, then waits
// for outstanding queries. End of input is not an error.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(events)
		for {
			body, err := ReadMessage(h.in)
			if err != nil {
				errc <- err
				return
			}
			select {
			case events <- body:
			case <-ctx.Done():
				return
			}
		}
	}()

	defer h.controller.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case body, ok := <-events:
			if !ok {
				err := <-errc
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if err := h.dispatch(body); err != nil {
				h.log.WithError(err).Warn("ignoring malformed event")
			}
		}
	}
}

func (h *Host) dispatch(body []byte) error {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	switch ev.Type {
	case EventNavigated:
		h.controller.Navigated(ev.TabID, ev.URL)
	case EventActivated:
		h.controller.Activated(ev.TabID, ev.URL)
	case EventClosed:
		h.controller.Closed(ev.TabID)
	case EventPopup:
		view := presenter.Present(h.controller.State(ev.TabID))
		h.write(Message{Type: MessagePopup, TabID: ev.TabID, Popup: &view.Popup})
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// Update implements [tabstate.Sink].
func (h *Host) Update(st tabstate.TabState) {
	view := presenter.Present(st)
	h.write(Message{Type: MessageBadge, TabID: st.TabID, Badge: &view.Badge})
}

// Remove implements [tabstate.Sink].
func (h *Host) Remove(id tabstate.TabID) {
	h.write(Message{Type: MessageBadge, TabID: id, Badge: &presenter.Badge{Cleared: true}})
}

func (h *Host) write(m Message) {
	h.wmu.Lock()
	defer h.wmu.Unlock()

	if err := WriteMessage(h.out, m); err != nil {
		h.log.WithError(err).Error("failed to write native message")
	}
}
