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

// ListVitals returns the readings sorted by date ascending, the order
// the trend charts consume directly.
func ListVitals(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.Vitals(c.Request.Context(), c.Param("userId")))
	}
}

// AddVital inserts or merges a reading. A second write for the same
// date merges fields into the existing entry rather than duplicating.
func AddVital(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v healthstore.Vital
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vital payload"})
			return
		}
		if err := validation.ValidateDateKey(v.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d.Store.AddVital(c.Request.Context(), c.Param("userId"), v)
		c.JSON(http.StatusCreated, v)
	}
}
