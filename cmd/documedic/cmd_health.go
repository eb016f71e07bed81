// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// healthCmd checks the webapp service and the document store endpoint.
//
// # Description
//
// Performs a liveness check of both moving parts of the stack: the
// webapp API (/health) and the raw document store endpoint. Exits with
// code 1 if either is unreachable.
//
// # Examples
//
//	documedic health
//	documedic health --api http://prod-host:12310
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the webapp service and the document store",
	Run:   runHealthCommand,
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runHealthCommand(cmd *cobra.Command, args []string) {
	client := &http.Client{Timeout: 5 * time.Second}
	healthy := true

	resp, err := client.Get(apiURL + "/health")
	switch {
	case err != nil:
		fmt.Printf("webapp    %s  UNREACHABLE (%v)\n", apiURL, err)
		healthy = false
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		fmt.Printf("webapp    %s  UNHEALTHY (status %d)\n", apiURL, resp.StatusCode)
		healthy = false
	default:
		var body map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		fmt.Printf("webapp    %s  OK\n", apiURL)
	}

	resp, err = client.Get(storeURL)
	switch {
	case err != nil:
		fmt.Printf("store     %s  UNREACHABLE (%v)\n", storeURL, err)
		healthy = false
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		fmt.Printf("store     %s  UNHEALTHY (status %d)\n", storeURL, resp.StatusCode)
		healthy = false
	default:
		resp.Body.Close()
		fmt.Printf("store     %s  OK\n", storeURL)
	}

	if !healthy {
		os.Exit(1)
	}
}
