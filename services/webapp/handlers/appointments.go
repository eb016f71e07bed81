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

	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
)

// ListAppointments returns appointments soonest first.
func ListAppointments(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.Appointments(c.Request.Context(), c.Param("userId")))
	}
}

func AddAppointment(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a healthstore.Appointment
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment payload"})
			return
		}
		added := d.Store.AddAppointment(c.Request.Context(), c.Param("userId"), a)
		c.JSON(http.StatusCreated, added)
	}
}

func UpdateAppointment(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a healthstore.Appointment
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment payload"})
			return
		}
		a.ID = c.Param("id")
		d.Store.UpdateAppointment(c.Request.Context(), c.Param("userId"), a)
		c.JSON(http.StatusOK, a)
	}
}

func DeleteAppointment(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Store.DeleteAppointment(c.Request.Context(), c.Param("userId"), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
