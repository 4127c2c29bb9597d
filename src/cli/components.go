// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"

	"github.com/H0llyW00dzZ/certificate-info/src/cache"
	"github.com/H0llyW00dzZ/certificate-info/src/config"
	x509remote "github.com/H0llyW00dzZ/certificate-info/src/internal/x509/remote"
	"github.com/H0llyW00dzZ/certificate-info/src/logger"
)

// loadConfig reads the configuration named by --config (or the environment).
func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configFile)
}

// newServiceLogger builds the structured logger for long-running commands.
func newServiceLogger(w io.Writer, cfg *config.Config) (*logger.ServiceLogger, error) {
	return logger.NewServiceLogger(w, cfg.Log.Level, logger.Format(cfg.Log.Format))
}

// newFetcher builds the TLS fetcher described by cfg.
func newFetcher(cfg *config.Config) (*x509remote.Fetcher, error) {
	return x509remote.New(x509remote.Options{
		Timeout:     cfg.Fetch.Timeout(),
		Port:        cfg.Fetch.Port,
		Fingerprint: x509remote.Fingerprint(cfg.Fetch.Fingerprint),
		RatePerSec:  cfg.Fetch.RatePerSecond,
		Burst:       cfg.Fetch.Burst,
	})
}

// newCache builds the single-flight record cache in front of a fresh fetcher.
func newCache(cfg *config.Config) (*cache.Cache, error) {
	f, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}
	return cache.New(f, cache.Config{
		MaxEntries: cfg.Cache.MaxEntries,
		TTL:        cfg.Cache.TTL(),
	}), nil
}
