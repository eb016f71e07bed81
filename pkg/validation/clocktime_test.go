// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validation

import (
	"testing"
)

func TestValidateClockTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		// Valid times
		{"morning", "08:00", false},
		{"single digit hour", "8:00", false},
		{"midnight", "00:00", false},
		{"last minute", "23:59", false},
		{"noon", "12:30", false},

		// Invalid times
		{"empty", "", true},
		{"hour out of range", "24:00", true},
		{"minute out of range", "08:60", true},
		{"missing minutes", "08:", true},
		{"no colon", "0800", true},
		{"with seconds", "08:00:00", true},
		{"am/pm", "8:00 AM", true},
		{"negative", "-1:30", true},
		{"whitespace", " 08:00", true},
		{"garbage", "soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClockTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClockTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClockTimes(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		wantErr bool
	}{
		{"all valid", []string{"08:00", "12:30", "20:00"}, false},
		{"one invalid", []string{"08:00", "25:00"}, true},
		{"empty slice", []string{}, false},
		{"empty entry", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClockTimes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClockTimes(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in       string
		hour     int
		minute   int
		wantErr  bool
	}{
		{"08:15", 8, 15, false},
		{"23:59", 23, 59, false},
		{"7:05", 7, 5, false},
		{"24:00", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := ParseClockTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClockTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (h != tt.hour || m != tt.minute) {
				t.Errorf("ParseClockTime(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.hour, tt.minute)
			}
		})
	}
}

func TestValidateDateKey(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "2025-08-31", false},
		{"leap day", "2024-02-29", false},
		{"empty", "", true},
		{"wrong separator", "2025/08/31", true},
		{"nonexistent date", "2025-02-30", true},
		{"month out of range", "2025-13-01", true},
		{"short year", "25-08-31", true},
		{"with time", "2025-08-31T00:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDateKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
