// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package healthstore implements the document-store layer of DocuMedic.
//
// The backing store is a single remote JSON document (AppData) holding
// every user's health records. There are no partial writes: every
// mutation fetches the whole document, modifies one user's bundle in
// memory, and overwrites the whole document. The store endpoint offers
// no transactions, no conditional writes, and no versioning, so the
// consistency model is strictly last-writer-wins: two overlapping
// mutations fetch the same base and the later write discards the
// earlier change. Callers are expected to tolerate that, not work
// around it.
package healthstore

// AppData is the entire remote document. It is the unit of storage:
// the store endpoint only ever returns or replaces all of it at once.
type AppData struct {
	Users          map[string]UserData `json:"users"`
	CommunityPosts []Post              `json:"communityPosts"`
	CareLocations  []CareLocation      `json:"careLocations"`
}

// UserData is one user's bundle of health-record collections inside
// AppData. A bundle is created lazily on first read (see Resolve) and
// only persisted by the first mutation that targets it.
type UserData struct {
	Profile       Profile        `json:"profile"`
	Records       []Record       `json:"records"`
	Medications   []Medication   `json:"medications"`
	Reminders     []Reminder     `json:"reminders"`
	Appointments  []Appointment  `json:"appointments"`
	Symptoms      []Symptom      `json:"symptoms"`
	Vitals        []Vital        `json:"vitals"`
	FoodLogs      []FoodLog      `json:"foodLogs"`
	WaterIntake   map[string]int `json:"waterIntake"` // glasses per YYYY-MM-DD
	Allergies     []Allergy      `json:"allergies"`
	Immunizations []Immunization `json:"immunizations"`
	CarePlans     []CarePlan     `json:"carePlans"`
}

type Profile struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	BloodType        string `json:"bloodType"`
	HeightCm         int    `json:"heightCm"`
	WeightKg         int    `json:"weightKg"`
	EmergencyContact string `json:"emergencyContact"`
}

type Record struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Type   string `json:"type"` // lab report, prescription, imaging, ...
	Date   string `json:"date"` // YYYY-MM-DD
	Doctor string `json:"doctor"`
	Notes  string `json:"notes"`
}

// Medication carries a takenToday flag with no automatic daily reset;
// the source application never resets it either. Inactive medications
// are excluded from adherence counts and from reminder scheduling.
type Medication struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Dosage     string   `json:"dosage"`
	Frequency  string   `json:"frequency"`
	Times      []string `json:"times"` // 24-hour HH:MM strings
	TakenToday bool     `json:"takenToday"`
	IsActive   bool     `json:"isActive"`
}

type Reminder struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Time      string `json:"time"` // HH:MM; entries without one are dropped on read
	Completed bool   `json:"completed"`
}

type Appointment struct {
	ID        string `json:"id"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

type Symptom struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Severity string `json:"severity"` // mild, moderate, severe
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes"`
}

// Vital is keyed by calendar date: at most one Vital exists per date
// per user. Writing a second vital for the same date merges fields
// into the existing entry instead of appending a duplicate.
type Vital struct {
	Date        string  `json:"date"` // YYYY-MM-DD, unique within the collection
	Systolic    int     `json:"systolic"`
	Diastolic   int     `json:"diastolic"`
	HeartRate   int     `json:"heartRate"`
	Temperature float64 `json:"temperature"`
	WeightKg    float64 `json:"weightKg"`
	BloodSugar  int     `json:"bloodSugar"`
}

type FoodLog struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MealType string `json:"mealType"` // breakfast, lunch, dinner, snack
	Calories int    `json:"calories"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type Allergy struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Reaction string `json:"reaction"`
}

type Immunization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Provider string `json:"provider"`
}

type CarePlan struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // active, completed, paused
}

type Post struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Likes     int    `json:"likes"`
	Timestamp string `json:"timestamp"`
}

type CareLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // hospital, clinic, pharmacy
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Clone returns a deep copy of the bundle. Resolve hands out copies so
// that two reads of the same unseen user never alias each other.
func (u UserData) Clone() UserData {
	out := u
	out.Records = append([]Record(nil), u.Records...)
	out.Medications = make([]Medication, len(u.Medications))
	for i, m := range u.Medications {
		m.Times = append([]string(nil), m.Times...)
		out.Medications[i] = m
	}
	out.Reminders = append([]Reminder(nil), u.Reminders...)
	out.Appointments = append([]Appointment(nil), u.Appointments...)
	out.Symptoms = append([]Symptom(nil), u.Symptoms...)
	out.Vitals = append([]Vital(nil), u.Vitals...)
	out.FoodLogs = append([]FoodLog(nil), u.FoodLogs...)
	out.Allergies = append([]Allergy(nil), u.Allergies...)
	out.Immunizations = append([]Immunization(nil), u.Immunizations...)
	out.CarePlans = append([]CarePlan(nil), u.CarePlans...)
	if u.WaterIntake != nil {
		out.WaterIntake = make(map[string]int, len(u.WaterIntake))
		for k, v := range u.WaterIntake {
			out.WaterIntake[k] = v
		}
	}
	return out
}
