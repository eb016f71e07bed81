// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/config"
	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/server"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var serveConfigPath string // Optional YAML config file

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// serveCmd runs the webapp service in the foreground.
//
// # Description
//
// Identical to running the webapp binary directly; kept in the CLI so a
// single installed binary covers both operations and serving.
//
// # Examples
//
//	documedic serve
//	documedic serve --config /etc/documedic/config.yaml
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webapp service in the foreground",
	Run:   runServeCommand,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "",
		"Path to a YAML config file (env vars override it)")
	rootCmd.AddCommand(serveCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runServeCommand(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := server.Run(cfg); err != nil {
		log.Fatalf("Webapp service exited: %v", err)
	}
}
