// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package healthstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPClient allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteStore is the whole-document storage contract.
//
// # Description
//
// Fetch never fails from the caller's perspective: any transport error,
// non-2xx status, or malformed payload degrades to the seeded default
// document. Write is fire-and-forget: failures are logged and counted,
// never returned. There is no retry and no acknowledgment, so a write
// can be lost while the caller believes it succeeded.
//
// # Limitations
//
//   - No optimistic concurrency. Two concurrent read-modify-write
//     cycles over the same base document lose one of the two changes.
//   - No partial writes; every Write replaces the entire document.
type RemoteStore interface {
	Fetch(ctx context.Context) AppData
	Write(ctx context.Context, doc AppData)
}

// HTTPStore talks to a dumb blob endpoint: GET returns the document,
// PUT replaces it unconditionally.
type HTTPStore struct {
	URL    string
	Client HTTPClient
}

// NewHTTPStore creates a store against the given blob endpoint URL.
func NewHTTPStore(url string) *HTTPStore {
	return &HTTPStore{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch reads the remote document, degrading to DefaultDocument on any
// failure. The shape check is deliberately minimal: "users" must be a
// JSON object and "communityPosts" a JSON array; everything else is
// taken on faith.
func (s *HTTPStore) Fetch(ctx context.Context) AppData {
	fetchTotal.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return s.fallback("build request", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return s.fallback("fetch document", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("store returned non-success status, using defaults",
			"status", resp.StatusCode, "url", s.URL)
		fetchFallbackTotal.Inc()
		return DefaultDocument()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.fallback("read body", err)
	}

	doc, ok := decodeDocument(body)
	if !ok {
		slog.Warn("store payload failed shape check, using defaults", "url", s.URL)
		fetchFallbackTotal.Inc()
		return DefaultDocument()
	}
	return doc
}

// Write overwrites the remote document. Failures are swallowed: the
// caller has already applied its change in memory and the store offers
// nothing to do about a lost write anyway.
func (s *HTTPStore) Write(ctx context.Context, doc AppData) {
	writeTotal.Inc()

	payload, err := json.Marshal(doc)
	if err != nil {
		slog.Error("failed to marshal document for write", "error", err)
		writeFailureTotal.Inc()
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.URL, bytes.NewReader(payload))
	if err != nil {
		slog.Error("failed to build store write request", "error", err)
		writeFailureTotal.Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		slog.Error("store write failed", "error", err, "url", s.URL)
		writeFailureTotal.Inc()
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("store rejected write", "status", resp.StatusCode, "url", s.URL)
		writeFailureTotal.Inc()
	}
}

func (s *HTTPStore) fallback(op string, err error) AppData {
	slog.Warn("store "+op+" failed, using defaults", "error", err, "url", s.URL)
	fetchFallbackTotal.Inc()
	return DefaultDocument()
}

// decodeDocument applies the minimal shape check before committing to
// a full decode: "users" must be an object and "communityPosts" an
// array. A payload passing the probe but failing the typed decode is
// also rejected.
func decodeDocument(body []byte) (AppData, bool) {
	var probe struct {
		Users          json.RawMessage `json:"users"`
		CommunityPosts json.RawMessage `json:"communityPosts"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return AppData{}, false
	}
	if firstByte(probe.Users) != '{' || firstByte(probe.CommunityPosts) != '[' {
		return AppData{}, false
	}

	var doc AppData
	if err := json.Unmarshal(body, &doc); err != nil {
		return AppData{}, false
	}
	if doc.Users == nil {
		doc.Users = map[string]UserData{}
	}
	return doc, true
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
