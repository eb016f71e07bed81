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

// ListSymptoms returns symptom entries most recent first.
func ListSymptoms(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.Symptoms(c.Request.Context(), c.Param("userId")))
	}
}

func AddSymptom(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s healthstore.Symptom
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid symptom payload"})
			return
		}
		added := d.Store.AddSymptom(c.Request.Context(), c.Param("userId"), s)
		c.JSON(http.StatusCreated, added)
	}
}

func DeleteSymptom(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Store.DeleteSymptom(c.Request.Context(), c.Param("userId"), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
