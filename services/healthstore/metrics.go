// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package healthstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store traffic counters. Write failures matter most here: the store
// contract swallows them, so this counter is the only place a silently
// lost write is visible at all.
var (
	fetchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documedic_store_fetch_total",
		Help: "Document fetches attempted against the remote store.",
	})
	fetchFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documedic_store_fetch_fallback_total",
		Help: "Fetches that degraded to the seeded default document.",
	})
	writeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documedic_store_write_total",
		Help: "Whole-document writes attempted against the remote store.",
	})
	writeFailureTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documedic_store_write_failure_total",
		Help: "Writes that failed and were swallowed (lost silently).",
	})
	userSeedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documedic_store_user_seed_total",
		Help: "Default bundles synthesized for unknown user ids.",
	})
)
