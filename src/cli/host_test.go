// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certificate-info/src/client"
	"github.com/H0llyW00dzZ/certificate-info/src/config"
	"github.com/H0llyW00dzZ/certificate-info/src/tabstate"
)

func TestQueryTimeoutCoversClientRetries(t *testing.T) {
	cfg := config.Default()
	c, err := client.New(client.Options{
		Endpoint: cfg.Client.Endpoint,
		Timeout:  cfg.Client.Timeout(),
		Attempts: uint(cfg.Client.Attempts),
	})
	require.NoError(t, err)

	// three 2s attempts plus 100ms and 200ms of backoff
	worstCase := 3*2*time.Second + 300*time.Millisecond

	assert.Equal(t, worstCase, c.Budget())
	assert.Greater(t, queryTimeout(c), worstCase)
	assert.Greater(t, queryTimeout(c), tabstate.DefaultQueryTimeout)
}
