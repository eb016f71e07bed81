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

// ListFoodLogs returns food entries most recent first.
func ListFoodLogs(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.FoodLogs(c.Request.Context(), c.Param("userId")))
	}
}

func AddFoodLog(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f healthstore.FoodLog
		if err := c.ShouldBindJSON(&f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food log payload"})
			return
		}
		added := d.Store.AddFoodLog(c.Request.Context(), c.Param("userId"), f)
		c.JSON(http.StatusCreated, added)
	}
}

func DeleteFoodLog(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Store.DeleteFoodLog(c.Request.Context(), c.Param("userId"), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// SetWaterIntake replaces the glasses count for one date.
func SetWaterIntake(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Date    string `json:"date"`
			Glasses int    `json:"glasses"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := validation.ValidateDateKey(body.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Glasses < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "glasses cannot be negative"})
			return
		}
		d.Store.SetWaterIntake(c.Request.Context(), c.Param("userId"), body.Date, body.Glasses)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
