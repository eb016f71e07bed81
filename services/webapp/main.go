// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"log"
	"os"

	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/config"
	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("DOCUMEDIC_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := server.Run(cfg); err != nil {
		log.Fatalf("webapp service exited: %v", err)
	}
}
