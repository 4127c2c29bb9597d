// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tabstate

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/sirupsen/logrus"
)

// DefaultQueryTimeout bounds one classification query.
const DefaultQueryTimeout = 5 * time.Second

// Querier classifies a hostname. [client.Client] is the production implementation.
type Querier interface {
	Query(ctx context.Context, hostname string) certinfo.Result
}

// Sink receives state changes to render.
// Calls are serialized by the Controller.
type Sink interface {
	// Update renders the tab's new state.
	Update(state TabState)
	// Remove discards whatever was rendered for a closed tab.
	Remove(id TabID)
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithQueryTimeout bounds each query; an overrun becomes a FetchError.
func WithQueryTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) { c.timeout = d }
}

// WithLogger sets the controller logger.
func WithLogger(log *logrus.Entry) ControllerOption {
	return func(c *Controller) { c.log = log }
}

// Controller drives a Store from browser events and joins query results
// back through the generation check.
//
// Thread Safety: Safe for concurrent use. Each state change and its
// rendering happen in one critical section.
type Controller struct {
	ctx     context.Context
	store   *Store
	querier Querier
	sink    Sink
	timeout time.Duration
	log     *logrus.Entry

	mu sync.Mutex // serializes mutation with rendering
	wg sync.WaitGroup
}

// NewController creates a Controller. Queries stop being applied once ctx is done.
func NewController(ctx context.Context, store *Store, querier Querier, sink Sink, opts ...ControllerOption) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		ctx:     ctx,
		store:   store,
		querier: querier,
		sink:    sink,
		timeout: DefaultQueryTimeout,
		log:     logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Navigated handles a tab loading rawURL.
func (c *Controller) Navigated(id TabID, rawURL string) { c.navigate(id, rawURL) }

// Activated handles a tab gaining focus. The page is re-evaluated so the
// badge reflects the certificate as it is now.
func (c *Controller) Activated(id TabID, rawURL string) { c.navigate(id, rawURL) }

func (c *Controller) navigate(id TabID, rawURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rawURL == "" {
		return
	}

	st, needsQuery := c.store.Navigate(id, rawURL)
	c.sink.Update(st)

	if needsQuery {
		c.log.WithFields(logrus.Fields{"tab": id, "host": st.Hostname, "generation": st.Generation}).Debug("querying certificate")
		c.wg.Add(1)
		go c.query(id, st.Generation, st.Hostname)
	}
}

// Closed handles a tab being closed.
func (c *Controller) Closed(id TabID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Close(id)
	c.sink.Remove(id)
}

// State returns the tab's current state.
func (c *Controller) State(id TabID) TabState { return c.store.Get(id) }

// Wait blocks until every outstanding query has been joined.
func (c *Controller) Wait() { c.wg.Wait() }

func (c *Controller) query(id TabID, gen uint64, hostname string) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
	defer cancel()

	results := make(chan certinfo.Result, 1)
	go func() { results <- c.querier.Query(ctx, hostname) }()

	var res certinfo.Result
	select {
	case res = <-results:
	case <-ctx.Done():
	}

	if c.ctx.Err() != nil {
		return
	}
	if ctx.Err() != nil && res.Status != certinfo.StatusSuccess {
		res = certinfo.FetchError(fmt.Errorf("%w: query exceeded %s", certinfo.ErrTimeout, c.timeout))
	}
	c.complete(id, gen, res)
}

func (c *Controller) complete(id TabID, gen uint64, res certinfo.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, applied := c.store.Complete(id, gen, res)
	entry := c.log.WithFields(logrus.Fields{"tab": id, "generation": gen, "status": res.Status.String()})
	if !applied {
		entry.Debug("discarding stale result")
		return
	}
	if res.Err != nil {
		entry = entry.WithError(res.Err)
	}
	entry.Debug("applied result")
	c.sink.Update(st)
}
