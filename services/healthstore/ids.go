// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package healthstore

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for newly inserted entities.
//
// The original client derived ids from the current wall-clock
// millisecond, which collides when two inserts land in the same
// millisecond. UUIDGenerator is the default; TimestampGenerator is kept
// so the legacy behavior stays available (and its collision stays
// testable).
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// TimestampGenerator issues ids from the current Unix millisecond.
// Two calls within the same millisecond return the same id.
type TimestampGenerator struct {
	Now func() time.Time // nil means time.Now
}

func (g TimestampGenerator) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}
