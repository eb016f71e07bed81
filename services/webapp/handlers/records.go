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

func ListRecords(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := d.Store.User(c.Request.Context(), c.Param("userId"))
		c.JSON(http.StatusOK, user.Records)
	}
}

func AddRecord(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec healthstore.Record
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record payload"})
			return
		}
		added := d.Store.AddRecord(c.Request.Context(), c.Param("userId"), rec)
		c.JSON(http.StatusCreated, added)
	}
}

func UpdateRecord(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec healthstore.Record
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record payload"})
			return
		}
		rec.ID = c.Param("id")
		d.Store.UpdateRecord(c.Request.Context(), c.Param("userId"), rec)
		c.JSON(http.StatusOK, rec)
	}
}

func DeleteRecord(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Store.DeleteRecord(c.Request.Context(), c.Param("userId"), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
