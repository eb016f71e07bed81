// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers holds the gin handlers of the DocuMedic webapp API.
package handlers

import (
	"context"
	"sync"

	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
	"github.com/TactualCoder24/final-documedic--sub000/services/interaction"
	"github.com/TactualCoder24/final-documedic--sub000/services/reminder"
)

// Deps bundles the services the handlers dispatch to. One Deps value
// is shared by every request.
type Deps struct {
	Store      *healthstore.Gateway
	Hub        *reminder.Hub
	Schedulers *reminder.Set
	Checker    interaction.Checker

	mu    sync.Mutex
	gates map[string]*interaction.Gate
}

// NewDeps wires the handler dependencies together.
func NewDeps(store *healthstore.Gateway, hub *reminder.Hub, schedulers *reminder.Set, checker interaction.Checker) *Deps {
	return &Deps{
		Store:      store,
		Hub:        hub,
		Schedulers: schedulers,
		Checker:    checker,
		gates:      map[string]*interaction.Gate{},
	}
}

// GateFor returns the user's interaction gate, creating it on first
// use. Commits made through the gate reconcile the user's reminder
// timers the same way direct medication writes do.
func (d *Deps) GateFor(userID string) *interaction.Gate {
	d.mu.Lock()
	defer d.mu.Unlock()
	gate, ok := d.gates[userID]
	if !ok {
		gate = interaction.NewGate(d.Checker, &reconcilingStore{deps: d})
		d.gates[userID] = gate
	}
	return gate
}

// reconcile re-syncs a user's reminder timers with the stored
// medication list. Called after every medication mutation.
func (d *Deps) reconcile(ctx context.Context, userID string) {
	meds := d.Store.User(ctx, userID).Medications
	d.Schedulers.For(userID).Reconcile(meds)
}

// reconcilingStore lets the interaction gate commit through the
// gateway while keeping reminder timers in sync with the write.
type reconcilingStore struct {
	deps *Deps
}

func (r *reconcilingStore) AddMedication(ctx context.Context, userID string, m healthstore.Medication) healthstore.Medication {
	added := r.deps.Store.AddMedication(ctx, userID, m)
	r.deps.reconcile(ctx, userID)
	return added
}

func (r *reconcilingStore) ActiveMedications(ctx context.Context, userID string) []healthstore.Medication {
	return r.deps.Store.ActiveMedications(ctx, userID)
}
