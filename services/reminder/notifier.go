// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reminder

import "log/slog"

// Permission mirrors the browser-style notification permission states.
// The scheduler arms nothing unless permission is Granted, and it only
// re-evaluates permission when told to (no polling).
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Notification is the fire-and-forget payload shown to the user when a
// medication timer elapses. There is no delivery acknowledgment.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier delivers notifications. Implementations must not block the
// scheduler: delivery is best effort.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the log. Used when no delivery
// channel is connected (headless runs, tests).
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	slog.Info("notification", "title", n.Title, "body", n.Body)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
