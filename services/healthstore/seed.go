// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package healthstore

// DefaultDocument returns the document used whenever the remote blob is
// unreachable, returns a non-success status, or fails the shape check.
// Callers of Fetch never see an error; they see this instead.
func DefaultDocument() AppData {
	return AppData{
		Users:          map[string]UserData{},
		CommunityPosts: seedPosts(),
		CareLocations:  seedCareLocations(),
	}
}

// SeedUserData returns the starter bundle handed to a user id that does
// not yet exist in the document. The content is static mock data, so
// two independent seedings are content-identical. The bundle is NOT
// written back here: a read-only session must never make the user
// "exist" in the remote document.
func SeedUserData() UserData {
	return UserData{
		Profile: Profile{
			Name:      "New User",
			BloodType: "O+",
		},
		Records: []Record{
			{ID: "seed-rec-1", Title: "Annual Physical Results", Type: "lab report",
				Date: "2025-01-15", Doctor: "Dr. Patel", Notes: "All values within normal range."},
			{ID: "seed-rec-2", Title: "Lisinopril Prescription", Type: "prescription",
				Date: "2025-02-02", Doctor: "Dr. Patel"},
		},
		Medications: []Medication{
			{ID: "seed-med-1", Name: "Lisinopril", Dosage: "10mg", Frequency: "daily",
				Times: []string{"08:00"}, IsActive: true},
			{ID: "seed-med-2", Name: "Vitamin D", Dosage: "1000 IU", Frequency: "daily",
				Times: []string{"09:00"}, IsActive: true},
		},
		Reminders: []Reminder{
			{ID: "seed-rem-1", Title: "Morning medication", Time: "08:00"},
		},
		Appointments: []Appointment{
			{ID: "seed-apt-1", Doctor: "Dr. Patel", Specialty: "Primary Care",
				Date: "2025-09-20", Time: "10:30", Location: "Downtown Clinic"},
		},
		Symptoms: nil,
		Vitals: []Vital{
			{Date: "2025-01-15", Systolic: 118, Diastolic: 76, HeartRate: 68,
				Temperature: 36.6, WeightKg: 72.5},
		},
		FoodLogs:    nil,
		WaterIntake: map[string]int{},
		Allergies: []Allergy{
			{ID: "seed-alg-1", Name: "Penicillin", Severity: "severe", Reaction: "hives"},
		},
		Immunizations: []Immunization{
			{ID: "seed-imm-1", Name: "Influenza", Date: "2024-10-05", Provider: "Downtown Clinic"},
		},
		CarePlans: []CarePlan{
			{ID: "seed-cp-1", Title: "Blood Pressure Management",
				Description: "Daily Lisinopril, weekly BP log, low-sodium diet.", Status: "active"},
		},
	}
}

func seedPosts() []Post {
	return []Post{
		{ID: "seed-post-1", Author: "CommunityTeam", Likes: 24,
			Content:   "Welcome to the DocuMedic community! Share tips, not medical advice.",
			Timestamp: "2025-01-01T09:00:00Z"},
		{ID: "seed-post-2", Author: "HealthCoachSam", Likes: 11,
			Content:   "Small habit that helped me: logging water right after breakfast.",
			Timestamp: "2025-01-03T14:30:00Z"},
	}
}

func seedCareLocations() []CareLocation {
	return []CareLocation{
		{ID: "seed-loc-1", Name: "Downtown Clinic", Type: "clinic",
			Address: "240 Main St", Phone: "555-0132"},
		{ID: "seed-loc-2", Name: "St. Mary's Hospital", Type: "hospital",
			Address: "1 Hospital Way", Phone: "555-0178"},
		{ID: "seed-loc-3", Name: "Corner Pharmacy", Type: "pharmacy",
			Address: "88 Elm Ave", Phone: "555-0114"},
	}
}
