// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package healthstore

import (
	"context"
	"log/slog"
	"sort"
)

// Gateway layers per-entity CRUD on top of the remote store. Every
// mutation is one full cycle: fetch the document, resolve the user's
// bundle, apply the change, assign the bundle back, write the whole
// document.
//
// # Thread Safety
//
// Gateway holds no mutable state of its own and is safe for concurrent
// use. The operations themselves are NOT atomic across callers: two
// overlapping mutations can fetch the same base document and the later
// write discards the earlier change. That is a property of the backing
// store, preserved on purpose.
type Gateway struct {
	store RemoteStore
	ids   IDGenerator
}

// NewGateway creates a gateway over the given store. A nil generator
// defaults to random UUIDs.
func NewGateway(store RemoteStore, ids IDGenerator) *Gateway {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Gateway{store: store, ids: ids}
}

// mutate runs one read-modify-write cycle against a single user bundle.
// Every mutation below funnels through here; the five steps never vary.
func (g *Gateway) mutate(ctx context.Context, userID string, apply func(*UserData)) {
	doc := g.store.Fetch(ctx)
	user, existed := Resolve(doc, userID)
	apply(&user)
	if doc.Users == nil {
		doc.Users = map[string]UserData{}
	}
	doc.Users[userID] = user
	g.store.Write(ctx, doc)
	if !existed {
		slog.Debug("first mutation persisted seeded bundle", "user_id", userID)
	}
}

// User returns the user's bundle, seeding defaults for unknown ids
// without persisting them.
func (g *Gateway) User(ctx context.Context, userID string) UserData {
	user, _ := Resolve(g.store.Fetch(ctx), userID)
	return user
}

// =============================================================================
// Records
// =============================================================================

func (g *Gateway) AddRecord(ctx context.Context, userID string, r Record) Record {
	r.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Records = append(u.Records, r)
	})
	return r
}

func (g *Gateway) UpdateRecord(ctx context.Context, userID string, r Record) {
	g.mutate(ctx, userID, func(u *UserData) {
		for i := range u.Records {
			if u.Records[i].ID == r.ID {
				u.Records[i] = r
				return
			}
		}
	})
}

func (g *Gateway) DeleteRecord(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Records = deleteByID(u.Records, id, func(r Record) string { return r.ID })
	})
}

// =============================================================================
// Medications
// =============================================================================

func (g *Gateway) AddMedication(ctx context.Context, userID string, m Medication) Medication {
	m.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Medications = append(u.Medications, m)
	})
	return m
}

func (g *Gateway) UpdateMedication(ctx context.Context, userID string, m Medication) {
	g.mutate(ctx, userID, func(u *UserData) {
		for i := range u.Medications {
			if u.Medications[i].ID == m.ID {
				u.Medications[i] = m
				return
			}
		}
	})
}

func (g *Gateway) DeleteMedication(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Medications = deleteByID(u.Medications, id, func(m Medication) string { return m.ID })
	})
}

// SetMedicationTaken flips the takenToday flag. Nothing resets the flag
// at midnight; the source application never did either.
func (g *Gateway) SetMedicationTaken(ctx context.Context, userID, id string, taken bool) {
	g.mutate(ctx, userID, func(u *UserData) {
		for i := range u.Medications {
			if u.Medications[i].ID == id {
				u.Medications[i].TakenToday = taken
				return
			}
		}
	})
}

// ActiveMedications returns medications with isActive set; inactive
// ones are excluded from adherence counts and from scheduling.
func (g *Gateway) ActiveMedications(ctx context.Context, userID string) []Medication {
	user := g.User(ctx, userID)
	out := make([]Medication, 0, len(user.Medications))
	for _, m := range user.Medications {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

// =============================================================================
// Reminders
// =============================================================================

func (g *Gateway) AddReminder(ctx context.Context, userID string, r Reminder) Reminder {
	r.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Reminders = append(u.Reminders, r)
	})
	return r
}

func (g *Gateway) UpdateReminder(ctx context.Context, userID string, r Reminder) {
	g.mutate(ctx, userID, func(u *UserData) {
		for i := range u.Reminders {
			if u.Reminders[i].ID == r.ID {
				u.Reminders[i] = r
				return
			}
		}
	})
}

func (g *Gateway) DeleteReminder(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Reminders = deleteByID(u.Reminders, id, func(r Reminder) string { return r.ID })
	})
}

// Reminders drops malformed entries (missing time), then sorts by time
// ascending.
func (g *Gateway) Reminders(ctx context.Context, userID string) []Reminder {
	user := g.User(ctx, userID)
	out := make([]Reminder, 0, len(user.Reminders))
	for _, r := range user.Reminders {
		if r.Time == "" {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// =============================================================================
// Appointments
// =============================================================================

func (g *Gateway) AddAppointment(ctx context.Context, userID string, a Appointment) Appointment {
	a.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Appointments = append(u.Appointments, a)
	})
	return a
}

func (g *Gateway) UpdateAppointment(ctx context.Context, userID string, a Appointment) {
	g.mutate(ctx, userID, func(u *UserData) {
		for i := range u.Appointments {
			if u.Appointments[i].ID == a.ID {
				u.Appointments[i] = a
				return
			}
		}
	})
}

func (g *Gateway) DeleteAppointment(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Appointments = deleteByID(u.Appointments, id, func(a Appointment) string { return a.ID })
	})
}

// Appointments returns the collection sorted by date then time,
// ascending (soonest first).
func (g *Gateway) Appointments(ctx context.Context, userID string) []Appointment {
	user := g.User(ctx, userID)
	out := append([]Appointment(nil), user.Appointments...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time < out[j].Date+" "+out[j].Time
	})
	return out
}

// =============================================================================
// Symptoms
// =============================================================================

func (g *Gateway) AddSymptom(ctx context.Context, userID string, s Symptom) Symptom {
	s.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Symptoms = append(u.Symptoms, s)
	})
	return s
}

func (g *Gateway) DeleteSymptom(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Symptoms = deleteByID(u.Symptoms, id, func(s Symptom) string { return s.ID })
	})
}

// Symptoms returns the collection sorted by date then time, descending
// (most recent first).
func (g *Gateway) Symptoms(ctx context.Context, userID string) []Symptom {
	user := g.User(ctx, userID)
	out := append([]Symptom(nil), user.Symptoms...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time > out[j].Date+" "+out[j].Time
	})
	return out
}

// =============================================================================
// Vitals
// =============================================================================

// AddVital inserts or merges a vital reading. The collection holds at
// most one entry per calendar date: a write for an existing date merges
// the non-zero fields of v into that entry instead of appending a
// duplicate. The collection is kept sorted by date ascending.
func (g *Gateway) AddVital(ctx context.Context, userID string, v Vital) {
	g.mutate(ctx, userID, func(u *UserData) {
		merged := false
		for i := range u.Vitals {
			if u.Vitals[i].Date == v.Date {
				mergeVital(&u.Vitals[i], v)
				merged = true
				break
			}
		}
		if !merged {
			u.Vitals = append(u.Vitals, v)
		}
		sort.Slice(u.Vitals, func(i, j int) bool { return u.Vitals[i].Date < u.Vitals[j].Date })
	})
}

func (g *Gateway) Vitals(ctx context.Context, userID string) []Vital {
	user := g.User(ctx, userID)
	out := append([]Vital(nil), user.Vitals...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// mergeVital overlays the provided (non-zero) fields of src onto dst.
func mergeVital(dst *Vital, src Vital) {
	if src.Systolic != 0 {
		dst.Systolic = src.Systolic
	}
	if src.Diastolic != 0 {
		dst.Diastolic = src.Diastolic
	}
	if src.HeartRate != 0 {
		dst.HeartRate = src.HeartRate
	}
	if src.Temperature != 0 {
		dst.Temperature = src.Temperature
	}
	if src.WeightKg != 0 {
		dst.WeightKg = src.WeightKg
	}
	if src.BloodSugar != 0 {
		dst.BloodSugar = src.BloodSugar
	}
}

// =============================================================================
// Food logs
// =============================================================================

func (g *Gateway) AddFoodLog(ctx context.Context, userID string, f FoodLog) FoodLog {
	f.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.FoodLogs = append(u.FoodLogs, f)
	})
	return f
}

func (g *Gateway) DeleteFoodLog(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.FoodLogs = deleteByID(u.FoodLogs, id, func(f FoodLog) string { return f.ID })
	})
}

// FoodLogs returns the collection sorted by date then time, descending.
func (g *Gateway) FoodLogs(ctx context.Context, userID string) []FoodLog {
	user := g.User(ctx, userID)
	out := append([]FoodLog(nil), user.FoodLogs...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time > out[j].Date+" "+out[j].Time
	})
	return out
}

// =============================================================================
// Water intake
// =============================================================================

// SetWaterIntake records glasses of water for a date, replacing any
// previous count for that date.
func (g *Gateway) SetWaterIntake(ctx context.Context, userID, date string, glasses int) {
	g.mutate(ctx, userID, func(u *UserData) {
		if u.WaterIntake == nil {
			u.WaterIntake = map[string]int{}
		}
		u.WaterIntake[date] = glasses
	})
}

// =============================================================================
// Clinical lists (read-mostly)
// =============================================================================

func (g *Gateway) AddAllergy(ctx context.Context, userID string, a Allergy) Allergy {
	a.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Allergies = append(u.Allergies, a)
	})
	return a
}

func (g *Gateway) DeleteAllergy(ctx context.Context, userID, id string) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Allergies = deleteByID(u.Allergies, id, func(a Allergy) string { return a.ID })
	})
}

func (g *Gateway) AddImmunization(ctx context.Context, userID string, im Immunization) Immunization {
	im.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.Immunizations = append(u.Immunizations, im)
	})
	return im
}

func (g *Gateway) AddCarePlan(ctx context.Context, userID string, cp CarePlan) CarePlan {
	cp.ID = g.ids.NewID()
	g.mutate(ctx, userID, func(u *UserData) {
		u.CarePlans = append(u.CarePlans, cp)
	})
	return cp
}

func (g *Gateway) UpdateCarePlan(ctx context.Context, userID string, cp CarePlan) {
	g.mutate(ctx, userID, func(u *UserData) {
		for i := range u.CarePlans {
			if u.CarePlans[i].ID == cp.ID {
				u.CarePlans[i] = cp
				return
			}
		}
	})
}

// =============================================================================
// Profile
// =============================================================================

func (g *Gateway) UpdateProfile(ctx context.Context, userID string, p Profile) {
	g.mutate(ctx, userID, func(u *UserData) {
		u.Profile = p
	})
}

// =============================================================================
// Shared (not per-user) collections
// =============================================================================

func (g *Gateway) CommunityPosts(ctx context.Context) []Post {
	return g.store.Fetch(ctx).CommunityPosts
}

// AddCommunityPost appends a post to the shared feed. Same
// read-modify-write cycle, just not scoped to a user bundle.
func (g *Gateway) AddCommunityPost(ctx context.Context, p Post) Post {
	p.ID = g.ids.NewID()
	doc := g.store.Fetch(ctx)
	doc.CommunityPosts = append(doc.CommunityPosts, p)
	g.store.Write(ctx, doc)
	return p
}

func (g *Gateway) CareLocations(ctx context.Context) []CareLocation {
	return g.store.Fetch(ctx).CareLocations
}

// deleteByID filters the element with the given id out of a collection.
func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
