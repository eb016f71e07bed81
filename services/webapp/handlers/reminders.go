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

	"github.com/TactualCoder24/final-documedic--sub000/pkg/validation"
	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
)

// ListReminders returns reminders sorted by time of day ascending.
// Entries without a time are dropped, not errored on.
func ListReminders(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.Reminders(c.Request.Context(), c.Param("userId")))
	}
}

func AddReminder(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r healthstore.Reminder
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder payload"})
			return
		}
		if err := validation.ValidateClockTime(r.Time); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		added := d.Store.AddReminder(c.Request.Context(), c.Param("userId"), r)
		c.JSON(http.StatusCreated, added)
	}
}

func UpdateReminder(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r healthstore.Reminder
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder payload"})
			return
		}
		r.ID = c.Param("id")
		d.Store.UpdateReminder(c.Request.Context(), c.Param("userId"), r)
		c.JSON(http.StatusOK, r)
	}
}

func DeleteReminder(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Store.DeleteReminder(c.Request.Context(), c.Param("userId"), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
