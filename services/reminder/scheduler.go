// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reminder

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/TactualCoder24/final-documedic--sub000/pkg/validation"
	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
)

// SlotKey identifies one armed timer: a medication at one of its
// scheduled times of day.
type SlotKey struct {
	MedicationID string
	Time         string // HH:MM
}

// Scheduler owns the set of armed one-shot medication timers.
//
// # Description
//
// For every active medication with a non-empty times list, each
// well-formed "HH:MM" entry maps to "today at HH:MM". Instants already
// in the past arm nothing: a slot missed today does NOT roll over to
// tomorrow. That limitation is inherited behavior, asserted by tests;
// do not "fix" it here without changing the product decision.
//
// Two maintenance operations exist:
//
//   - Rebuild: cancel every armed handle, then re-arm from scratch.
//     This is the original cancel-all/rearm-all protocol that runs on
//     any medication change and on permission grant.
//   - Reconcile: diff desired slots against armed slots and touch only
//     the difference. Cheaper for edits to a single medication.
//
// Nothing is armed unless permission is Granted. Permission changes
// are only observed via SetPermission; there is no polling.
//
// # Thread Safety
//
// All methods are safe for concurrent use; the timer map is
// mutex-protected and timer callbacks re-acquire the lock to remove
// their own handle.
type Scheduler struct {
	clock    Clock
	notifier Notifier

	mu         sync.Mutex
	permission Permission
	timers     map[SlotKey]*time.Timer
	lastMeds   []healthstore.Medication

	// afterFunc is swappable so tests can capture callbacks instead of
	// waiting for real timers.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewScheduler creates a scheduler delivering through the given
// notifier. Permission starts at Default (nothing armed). A nil clock
// means the system clock; a nil notifier means log-only delivery.
func NewScheduler(notifier Notifier, clock Clock) *Scheduler {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock:      clock,
		notifier:   notifier,
		permission: PermissionDefault,
		timers:     map[SlotKey]*time.Timer{},
		afterFunc:  time.AfterFunc,
	}
}

// SetPermission records the new permission state. A transition to
// Granted rebuilds from the last seen medication list, since nothing
// could be armed before. Any other state cancels everything.
func (s *Scheduler) SetPermission(p Permission) {
	s.mu.Lock()
	prev := s.permission
	s.permission = p
	meds := s.lastMeds
	s.mu.Unlock()

	if p == PermissionGranted && prev != PermissionGranted {
		s.Rebuild(meds)
		return
	}
	if p != PermissionGranted {
		s.cancelAll()
	}
}

// Permission returns the current permission state.
func (s *Scheduler) Permission() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// Rebuild cancels every armed handle and re-arms the full desired set.
// Cancelling first is what prevents duplicate or stale notifications
// after a medication edit.
func (s *Scheduler) Rebuild(meds []healthstore.Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastMeds = meds
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}

	if s.permission != PermissionGranted {
		slog.Debug("scheduler rebuild skipped, permission not granted",
			"permission", string(s.permission))
		return
	}

	for key, fireAt := range s.desiredSlots(meds) {
		s.armLocked(key, fireAt, medByID(meds, key.MedicationID))
	}
}

// Reconcile diffs the desired slot set against the armed one, cancels
// only stale handles, and arms only missing ones.
func (s *Scheduler) Reconcile(meds []healthstore.Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastMeds = meds
	if s.permission != PermissionGranted {
		for key, timer := range s.timers {
			timer.Stop()
			delete(s.timers, key)
		}
		return
	}

	desired := s.desiredSlots(meds)

	for key, timer := range s.timers {
		if _, keep := desired[key]; !keep {
			timer.Stop()
			delete(s.timers, key)
			slog.Debug("cancelled stale reminder", "medication_id", key.MedicationID, "slot", key.Time)
		}
	}
	for key, fireAt := range desired {
		if _, armed := s.timers[key]; !armed {
			s.armLocked(key, fireAt, medByID(meds, key.MedicationID))
		}
	}
}

// Stop cancels every armed handle. The scheduler can be reused after.
func (s *Scheduler) Stop() {
	s.cancelAll()
}

// ArmedCount returns the number of currently armed timers.
func (s *Scheduler) ArmedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// ArmedSlots returns the currently armed slot keys, for inspection.
func (s *Scheduler) ArmedSlots() []SlotKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SlotKey, 0, len(s.timers))
	for key := range s.timers {
		out = append(out, key)
	}
	return out
}

func (s *Scheduler) cancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}

// desiredSlots computes the slots that should be armed right now:
// active medications only, well-formed times only, future instants
// only. Past instants are skipped outright.
func (s *Scheduler) desiredSlots(meds []healthstore.Medication) map[SlotKey]time.Time {
	now := s.clock.Now()
	desired := map[SlotKey]time.Time{}

	for _, med := range meds {
		if !med.IsActive || len(med.Times) == 0 {
			continue
		}
		for _, slot := range med.Times {
			hour, minute, err := validation.ParseClockTime(slot)
			if err != nil {
				slog.Warn("skipping malformed medication time",
					"medication_id", med.ID, "time", slot, "error", err)
				continue
			}
			fireAt := time.Date(now.Year(), now.Month(), now.Day(),
				hour, minute, 0, 0, now.Location())
			if !fireAt.After(now) {
				// Already past today; not deferred to tomorrow.
				continue
			}
			desired[SlotKey{MedicationID: med.ID, Time: slot}] = fireAt
		}
	}
	return desired
}

// armLocked arms one slot. Caller holds s.mu.
func (s *Scheduler) armLocked(key SlotKey, fireAt time.Time, med healthstore.Medication) {
	delay := fireAt.Sub(s.clock.Now())
	if delay <= 0 {
		return
	}
	title := "Medication Reminder"
	body := fmt.Sprintf("Time to take %s (%s)", med.Name, med.Dosage)

	s.timers[key] = s.afterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		s.notifier.Notify(Notification{Title: title, Body: body})
	})
	slog.Debug("armed reminder", "medication_id", key.MedicationID, "slot", key.Time)
}

func medByID(meds []healthstore.Medication, id string) healthstore.Medication {
	for _, m := range meds {
		if m.ID == id {
			return m
		}
	}
	return healthstore.Medication{}
}
