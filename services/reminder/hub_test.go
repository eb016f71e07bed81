// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reminder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubBroadcastsToConnectedClient(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Registration happens in the handler goroutine; wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("client never registered, count = %d", hub.ClientCount())
	}

	hub.Notify(Notification{Title: "Medication Reminder", Body: "Time to take Lisinopril (10mg)"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Notification
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("client never received the notification: %v", err)
	}
	if got.Title != "Medication Reminder" || !strings.Contains(got.Body, "Lisinopril") {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestNotifyWithoutClientsIsHarmless(t *testing.T) {
	hub := NewHub()
	hub.Notify(Notification{Title: "t", Body: "b"}) // must not panic
	if hub.ClientCount() != 0 {
		t.Error("phantom client")
	}
}
