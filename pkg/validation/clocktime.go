// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation utilities for
// user-provided time strings.
//
// Medication schedules, reminders, and vitals are keyed by bare
// "HH:MM" and "YYYY-MM-DD" strings that arrive from clients verbatim.
// These validators are the single gate between that input and the
// scheduler/date-merge logic, which both assume well-formed values.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockTimePattern matches 24-hour clock strings: "08:00", "23:59".
// A single-digit hour ("8:00") is accepted, matching what the forms
// historically produced.
var clockTimePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// dateKeyPattern matches calendar date keys: "2025-08-31".
var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateClockTime validates a 24-hour "HH:MM" string.
//
// Returns an error for empty strings, out-of-range hours or minutes,
// and anything that is not a bare clock time.
//
// Example:
//
//	if err := validation.ValidateClockTime(slot); err != nil {
//	    return fmt.Errorf("invalid medication time: %w", err)
//	}
func ValidateClockTime(s string) error {
	if s == "" {
		return fmt.Errorf("clock time cannot be empty")
	}
	if !clockTimePattern.MatchString(s) {
		return fmt.Errorf("invalid clock time %q (want 24-hour HH:MM)", s)
	}
	return nil
}

// ValidateClockTimes validates multiple clock-time strings, returning
// an error listing every invalid entry.
func ValidateClockTimes(times []string) error {
	var invalid []string
	for _, s := range times {
		if err := ValidateClockTime(s); err != nil {
			invalid = append(invalid, s)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid clock times: %v", invalid)
	}
	return nil
}

// ParseClockTime splits a validated "HH:MM" string into hour and
// minute components.
func ParseClockTime(s string) (hour, minute int, err error) {
	if err := ValidateClockTime(s); err != nil {
		return 0, 0, err
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute, nil
}

// ValidateDateKey validates a "YYYY-MM-DD" calendar date key. The date
// must also exist on the calendar ("2025-02-30" is rejected).
func ValidateDateKey(s string) error {
	if s == "" {
		return fmt.Errorf("date key cannot be empty")
	}
	if !dateKeyPattern.MatchString(s) {
		return fmt.Errorf("invalid date key %q (want YYYY-MM-DD)", s)
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return nil
}
