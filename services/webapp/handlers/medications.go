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

func ListMedications(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := d.Store.User(c.Request.Context(), c.Param("userId"))
		c.JSON(http.StatusOK, user.Medications)
	}
}

func ListActiveMedications(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.ActiveMedications(c.Request.Context(), c.Param("userId")))
	}
}

// SubmitMedication stages a draft for the interaction check. All new
// medications enter through here; there is no direct-add endpoint.
// Responds immediately so the submission form can dismiss.
func SubmitMedication(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var med healthstore.Medication
		if err := c.ShouldBindJSON(&med); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication payload"})
			return
		}
		if err := validation.ValidateClockTimes(med.Times); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userID := c.Param("userId")
		if err := d.GateFor(userID).Submit(c.Request.Context(), userID, med); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "checking"})
	}
}

// MedicationCheckStatus reports the staged-commit state of the user's
// gate: idle, checking, or warned (with the warning text verbatim).
func MedicationCheckStatus(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate := d.GateFor(c.Param("userId"))
		body := gin.H{"state": string(gate.State())}
		if warning := gate.Warning(); warning != "" {
			body["warning"] = warning
		}
		c.JSON(http.StatusOK, body)
	}
}

// ConfirmMedication commits a warned draft anyway ("Add Anyway").
func ConfirmMedication(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.GateFor(c.Param("userId")).Confirm(c.Request.Context()); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "committed"})
	}
}

// CancelMedication discards the staged draft, whether the check is
// still running or a warning is on screen. Nothing is persisted.
func CancelMedication(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.GateFor(c.Param("userId")).Cancel(); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "discarded"})
	}
}

func UpdateMedication(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var med healthstore.Medication
		if err := c.ShouldBindJSON(&med); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication payload"})
			return
		}
		if err := validation.ValidateClockTimes(med.Times); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		med.ID = c.Param("id")
		userID := c.Param("userId")
		d.Store.UpdateMedication(c.Request.Context(), userID, med)
		d.reconcile(c.Request.Context(), userID)
		c.JSON(http.StatusOK, med)
	}
}

func DeleteMedication(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		d.Store.DeleteMedication(c.Request.Context(), userID, c.Param("id"))
		d.reconcile(c.Request.Context(), userID)
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// SetMedicationTaken flips the adherence flag for today. The flag has
// no automatic reset at midnight.
func SetMedicationTaken(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Taken bool `json:"taken"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		d.Store.SetMedicationTaken(c.Request.Context(), c.Param("userId"), c.Param("id"), body.Taken)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
