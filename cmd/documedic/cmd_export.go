// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	exportOutput string // Destination file, "-" for stdout
	exportPretty bool   // Indent the JSON output
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// exportCmd snapshots the whole remote document to a local file.
//
// # Description
//
// Fetches the document through the same fail-soft store client the
// webapp uses: an unreachable or corrupt store yields the seeded
// default document, never an error. Use it for backups before risky
// changes and for inspecting what the store actually holds.
//
// # Examples
//
//	documedic export -o backup.json
//	documedic export -o - --pretty    # Inspect on stdout
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Snapshot the whole document to a local JSON file",
	Run:   runExportCommand,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "documedic-export.json",
		"Destination file, or - for stdout")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false,
		"Indent the JSON output")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runExportCommand(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := healthstore.NewHTTPStore(storeURL)
	doc := store.Fetch(ctx)

	var (
		raw []byte
		err error
	)
	if exportPretty {
		raw, err = json.MarshalIndent(doc, "", "  ")
	} else {
		raw, err = json.Marshal(doc)
	}
	if err != nil {
		log.Fatalf("Error encoding document: %v", err)
	}

	if exportOutput == "-" {
		fmt.Println(string(raw))
		return
	}
	if err := os.WriteFile(exportOutput, raw, 0o600); err != nil {
		log.Fatalf("Error writing %s: %v", exportOutput, err)
	}
	fmt.Printf("Exported %d users to %s\n", len(doc.Users), exportOutput)
}
