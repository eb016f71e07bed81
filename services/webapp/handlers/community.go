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

// ListCommunityPosts serves the shared feed; it is the same for every
// user, not scoped to a bundle.
func ListCommunityPosts(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.CommunityPosts(c.Request.Context()))
	}
}

func AddCommunityPost(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p healthstore.Post
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post payload"})
			return
		}
		added := d.Store.AddCommunityPost(c.Request.Context(), p)
		c.JSON(http.StatusCreated, added)
	}
}

func ListCareLocations(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.Store.CareLocations(c.Request.Context()))
	}
}
