// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package healthstore

// Resolve returns the user's bundle from the document, or a freshly
// seeded default bundle if the user id is unknown.
//
// # Description
//
// Seeding is read-only: the synthesized bundle is NOT inserted into
// doc.Users. A user only starts to exist in the remote document when a
// mutation writes the whole document back with the bundle assigned.
// Until then, every Resolve for the same unknown id allocates an
// independent, content-identical bundle. Known users are returned as a
// deep copy too, so callers can mutate freely before assigning back.
//
// # Outputs
//
//   - UserData: the bundle (copy).
//   - bool: true if the user already existed in the document.
func Resolve(doc AppData, userID string) (UserData, bool) {
	if user, ok := doc.Users[userID]; ok {
		return user.Clone(), true
	}
	userSeedTotal.Inc()
	return SeedUserData(), false
}
