// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tabstate tracks per-tab protocol and certificate classification on
// the client side, keeping badge and popup state consistent while navigation
// events and service responses arrive out of order.
//
// Every navigation issues a new generation for the tab. A service response
// is tagged with the generation that requested it and is applied only while
// that generation is still current, so the last-issued navigation always
// wins. Generations come from one store-wide counter, which keeps a response
// issued before a tab was closed from matching a later tab reusing its ID.
//
// [Store] holds the state. [Controller] composes a Store with a [Querier]
// and a [Sink], serializing each state change with its rendering and running
// queries in goroutines.
package tabstate
