// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

var (
	apiURL   string // Base URL of the webapp service
	storeURL string // Blob endpoint holding the whole document
)

// =============================================================================
// ROOT COMMAND
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "documedic",
	Short: "Operations CLI for the DocuMedic stack",
	Long: `documedic is the operations CLI for the DocuMedic health record stack.

It talks to a running webapp service and to the document store endpoint:

  documedic health             # Check the webapp service
  documedic export -o doc.json # Snapshot the whole document to a file`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL,
		"api", envOr("DOCUMEDIC_API_URL", "http://localhost:12310"),
		"Base URL of the webapp service")
	rootCmd.PersistentFlags().StringVar(&storeURL,
		"store", envOr("DOCUMEDIC_STORE_URL", "http://localhost:3001/document"),
		"Document store endpoint")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(exportCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
