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

// GetUser returns the user's whole bundle. Unknown ids get the seeded
// defaults; nothing is persisted by the read.
func GetUser(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.User(c.Request.Context(), c.Param("userId")))
	}
}

func GetProfile(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := d.Store.User(c.Request.Context(), c.Param("userId"))
		c.JSON(http.StatusOK, user.Profile)
	}
}

func UpdateProfile(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p healthstore.Profile
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
			return
		}
		d.Store.UpdateProfile(c.Request.Context(), c.Param("userId"), p)
		c.JSON(http.StatusOK, p)
	}
}

// ListAllergies, ListImmunizations, ListCarePlans serve the read-mostly
// clinical lists straight from the bundle.

func ListAllergies(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := d.Store.User(c.Request.Context(), c.Param("userId"))
		c.JSON(http.StatusOK, user.Allergies)
	}
}

func AddAllergy(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a healthstore.Allergy
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergy payload"})
			return
		}
		added := d.Store.AddAllergy(c.Request.Context(), c.Param("userId"), a)
		c.JSON(http.StatusCreated, added)
	}
}

func DeleteAllergy(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.Store.DeleteAllergy(c.Request.Context(), c.Param("userId"), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

func ListImmunizations(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := d.Store.User(c.Request.Context(), c.Param("userId"))
		c.JSON(http.StatusOK, user.Immunizations)
	}
}

func AddImmunization(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var im healthstore.Immunization
		if err := c.ShouldBindJSON(&im); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid immunization payload"})
			return
		}
		added := d.Store.AddImmunization(c.Request.Context(), c.Param("userId"), im)
		c.JSON(http.StatusCreated, added)
	}
}

func ListCarePlans(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := d.Store.User(c.Request.Context(), c.Param("userId"))
		c.JSON(http.StatusOK, user.CarePlans)
	}
}

func AddCarePlan(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cp healthstore.CarePlan
		if err := c.ShouldBindJSON(&cp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid care plan payload"})
			return
		}
		added := d.Store.AddCarePlan(c.Request.Context(), c.Param("userId"), cp)
		c.JSON(http.StatusCreated, added)
	}
}

func UpdateCarePlan(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cp healthstore.CarePlan
		if err := c.ShouldBindJSON(&cp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid care plan payload"})
			return
		}
		cp.ID = c.Param("id")
		d.Store.UpdateCarePlan(c.Request.Context(), c.Param("userId"), cp)
		c.JSON(http.StatusOK, cp)
	}
}
