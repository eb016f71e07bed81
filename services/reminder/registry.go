// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reminder

import "sync"

// Set lazily manages one Scheduler per user. All schedulers share one
// notifier and one clock; their timer sets are independent.
type Set struct {
	notifier Notifier
	clock    Clock

	mu      sync.Mutex
	perUser map[string]*Scheduler
}

func NewSet(notifier Notifier, clock Clock) *Set {
	return &Set{
		notifier: notifier,
		clock:    clock,
		perUser:  map[string]*Scheduler{},
	}
}

// For returns the user's scheduler, creating it on first use.
func (s *Set) For(userID string) *Scheduler {
	s.mu.Lock()
	defer s.mu.Unlock()
	sched, ok := s.perUser[userID]
	if !ok {
		sched = NewScheduler(s.notifier, s.clock)
		s.perUser[userID] = sched
	}
	return sched
}

// StopAll cancels every armed timer across all users.
func (s *Set) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sched := range s.perUser {
		sched.Stop()
	}
}
