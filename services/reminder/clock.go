// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package reminder derives medication notification timers from the
// active medication list and manages their lifecycle.
package reminder

import "time"

// Clock abstracts wall-clock time so fire-time computation is testable
// and device clock changes cannot crash the scheduler (a fire-time in
// the past is simply skipped, never armed with a negative duration).
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock backed Clock used in production.
func SystemClock() Clock { return realClock{} }

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (f FixedClock) Now() time.Time { return f.Instant }
