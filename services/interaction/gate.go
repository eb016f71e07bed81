// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
)

// State of the gate's staged-commit workflow.
type State string

const (
	// StateIdle: nothing staged.
	StateIdle State = "idle"
	// StateChecking: a draft is staged and the safety check is running
	// in the background. The submission UI is already dismissed.
	StateChecking State = "checking"
	// StateWarned: the check returned something other than the safe
	// sentinel; the text is held for the user to read verbatim. The
	// draft stays staged until Confirm or Cancel.
	StateWarned State = "warned"
)

// MedicationStore is the slice of the gateway the gate needs: commit a
// staged draft and list what the user already takes.
type MedicationStore interface {
	AddMedication(ctx context.Context, userID string, m healthstore.Medication) healthstore.Medication
	ActiveMedications(ctx context.Context, userID string) []healthstore.Medication
}

// Gate is a manual two-phase commit substituting for a transaction:
// "prepare" is the external safety check, "commit" is the gateway
// write. The draft lives only in memory between the two; discarding it
// persists nothing anywhere.
//
// # State machine
//
//	Idle → Checking            Submit (draft staged, UI dismissed)
//	Checking → Idle            check == Sentinel: auto-commit
//	Checking → Warned          any other text: hold warning
//	Checking → Idle            check error: fail open, commit anyway
//	Warned → Idle              Confirm ("Add Anyway"): commit
//	Warned/Checking → Idle     Cancel: draft dropped
//
// # Thread Safety
//
// Safe for concurrent use. A Cancel during Checking wins over the
// in-flight resolution: the generation counter makes the stale
// resolution a no-op.
type Gate struct {
	checker Checker
	store   MedicationStore

	mu      sync.Mutex
	state   State
	userID  string
	staged  healthstore.Medication
	warning string
	gen     uint64
}

// NewGate wires the gate to its checker and medication store.
func NewGate(checker Checker, store MedicationStore) *Gate {
	return &Gate{checker: checker, store: store, state: StateIdle}
}

// Submit stages a medication draft and starts the background safety
// check. It returns immediately; the caller's form can be dismissed
// right away. Returns an error if a submission is already in flight.
func (g *Gate) Submit(ctx context.Context, userID string, draft healthstore.Medication) error {
	if draft.Name == "" {
		return fmt.Errorf("medication draft needs a name")
	}

	g.mu.Lock()
	if g.state != StateIdle {
		g.mu.Unlock()
		return fmt.Errorf("a staged medication is already pending (%s)", g.state)
	}
	g.state = StateChecking
	g.userID = userID
	g.staged = draft
	g.warning = ""
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	slog.Info("staged medication for interaction check", "user_id", userID, "name", draft.Name)

	// Callers hand us a request-scoped context that dies the moment the
	// 202 is written. The check and the commit must outlive it, or the
	// clean path never persists anything on a real server.
	go g.resolve(context.WithoutCancel(ctx), gen)
	return nil
}

// resolve runs the check and applies the outcome, unless the staging
// it belongs to was cancelled in the meantime.
func (g *Gate) resolve(ctx context.Context, gen uint64) {
	g.mu.Lock()
	if g.gen != gen || g.state != StateChecking {
		g.mu.Unlock()
		return
	}
	userID := g.userID
	draft := g.staged
	g.mu.Unlock()

	names := make([]string, 0, 8)
	for _, m := range g.store.ActiveMedications(ctx, userID) {
		names = append(names, m.Name)
	}
	names = append(names, draft.Name)

	text, err := g.checker.Check(ctx, names)

	g.mu.Lock()
	if g.gen != gen || g.state != StateChecking {
		// Cancelled while the check was in flight; draft already gone.
		g.mu.Unlock()
		return
	}

	switch {
	case err != nil:
		// Fail open: the check being unavailable must not block the
		// user. The medication is committed without a completed check
		// and the fixed fallback text replaces the result.
		g.resetLocked()
		g.mu.Unlock()
		slog.Warn("interaction check failed, committing without a check",
			"user_id", userID, "name", draft.Name, "error", err)
		g.store.AddMedication(ctx, userID, draft)

	case text == Sentinel:
		g.resetLocked()
		g.mu.Unlock()
		slog.Info("no significant interactions, auto-committing",
			"user_id", userID, "name", draft.Name)
		g.store.AddMedication(ctx, userID, draft)

	default:
		g.state = StateWarned
		g.warning = text
		g.mu.Unlock()
		slog.Info("interaction warning raised", "user_id", userID, "name", draft.Name)
	}
}

// Confirm commits the staged draft despite the warning ("Add Anyway").
func (g *Gate) Confirm(ctx context.Context) error {
	g.mu.Lock()
	if g.state != StateWarned {
		g.mu.Unlock()
		return fmt.Errorf("nothing to confirm in state %s", g.state)
	}
	userID := g.userID
	draft := g.staged
	g.resetLocked()
	g.mu.Unlock()

	slog.Info("user overrode interaction warning", "user_id", userID, "name", draft.Name)
	g.store.AddMedication(ctx, userID, draft)
	return nil
}

// Cancel drops the staged draft with no persistence. Valid while
// Checking (the in-flight check result will be ignored) and while
// Warned (the dialog was dismissed).
func (g *Gate) Cancel() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateIdle {
		return fmt.Errorf("nothing staged")
	}
	slog.Info("staged medication discarded", "user_id", g.userID, "name", g.staged.Name)
	g.resetLocked()
	return nil
}

// State returns the current gate state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Warning returns the collaborator's warning text, verbatim. Empty
// unless the gate is in StateWarned.
func (g *Gate) Warning() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.warning
}

// resetLocked returns to Idle. Caller holds g.mu. The generation bump
// invalidates any resolution still in flight.
func (g *Gate) resetLocked() {
	g.state = StateIdle
	g.userID = ""
	g.staged = healthstore.Medication{}
	g.warning = ""
	g.gen++
}
