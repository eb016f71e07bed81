// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TactualCoder24/final-documedic--sub000/services/reminder"
)

// NotificationsWS upgrades the connection; reminder notifications are
// pushed to every connected client as JSON frames.
func NotificationsWS(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Hub.HandleWS(c.Writer, c.Request)
	}
}

// GetNotificationPermission reports the user's reminder permission:
// default, granted, or denied.
func GetNotificationPermission(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sched := d.Schedulers.For(c.Param("userId"))
		c.JSON(http.StatusOK, gin.H{"permission": string(sched.Permission())})
	}
}

// SetNotificationPermission records the permission decision. Granting
// arms timers from the stored medication list; anything else disarms
// everything.
func SetNotificationPermission(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Permission string `json:"permission"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		perm := reminder.Permission(body.Permission)
		switch perm {
		case reminder.PermissionDefault, reminder.PermissionGranted, reminder.PermissionDenied:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "permission must be default, granted, or denied"})
			return
		}

		userID := c.Param("userId")
		sched := d.Schedulers.For(userID)
		if perm == reminder.PermissionGranted {
			// Seed the scheduler with the stored list before the grant so
			// the rebuild arms from current data.
			sched.Reconcile(d.Store.User(c.Request.Context(), userID).Medications)
		}
		sched.SetPermission(perm)
		c.JSON(http.StatusOK, gin.H{"permission": string(perm), "armed": sched.ArmedCount()})
	}
}
