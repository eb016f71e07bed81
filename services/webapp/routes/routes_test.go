// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
	"github.com/TactualCoder24/final-documedic--sub000/services/interaction"
	"github.com/TactualCoder24/final-documedic--sub000/services/reminder"
	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/handlers"
)

// ============================================================================
// Test Setup
// ============================================================================

func init() {
	// Set Gin to test mode to reduce noise in test output
	gin.SetMode(gin.TestMode)
}

type nopStore struct{}

func (nopStore) Fetch(_ context.Context) healthstore.AppData { return healthstore.DefaultDocument() }
func (nopStore) Write(_ context.Context, _ healthstore.AppData) {}

func testDeps(t *testing.T) *handlers.Deps {
	t.Helper()
	gateway := healthstore.NewGateway(nopStore{}, nil)
	hub := reminder.NewHub()
	schedulers := reminder.NewSet(hub, nil)
	t.Cleanup(schedulers.StopAll)
	checker := interaction.CheckerFunc(func(context.Context, []string) (string, error) {
		return interaction.Sentinel, nil
	})
	return handlers.NewDeps(gateway, hub, schedulers, checker)
}

// ============================================================================
// SetupRoutes Tests
// ============================================================================

func TestSetupRoutesRegistersCoreRoutes(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, testDeps(t))

	coreRoutes := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/v1/notifications/ws"},
		{"GET", "/v1/community/posts"},
		{"GET", "/v1/care-locations"},
		{"GET", "/v1/users/:userId"},
		{"GET", "/v1/users/:userId/medications"},
		{"POST", "/v1/users/:userId/medications/staged"},
		{"POST", "/v1/users/:userId/medications/staged/confirm"},
		{"POST", "/v1/users/:userId/medications/staged/cancel"},
		{"GET", "/v1/users/:userId/vitals"},
		{"PUT", "/v1/users/:userId/water-intake"},
		{"PUT", "/v1/users/:userId/notifications/permission"},
	}

	routes := router.Routes()
	for _, expected := range coreRoutes {
		found := false
		for _, r := range routes {
			if r.Method == expected.method && r.Path == expected.path {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected route %s %s not found", expected.method, expected.path)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, testDeps(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d, want 200", rec.Code)
	}
}
