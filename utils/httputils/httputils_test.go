// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package httputils

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// dummyRoundTripper is useful to simulate a response.
type dummyRoundTripper struct {
	response *http.Response
	lastReq  *http.Request
}

func (d *dummyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	d.lastReq = req

	return d.response, nil
}

func okResponse() *http.Response {
	return &http.Response{
		Status:     "200 OK",
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
	}
}

// TestLoggingRoundTripper verifies that the LoggingRoundTripper logs both the
// request and the response (including timing information).
func TestLoggingRoundTripper(t *testing.T) {
	var logBuffer bytes.Buffer

	lt := &LoggingRoundTripper{
		Transport: &dummyRoundTripper{response: okResponse()},
		Writer:    &logBuffer,
		DumpBody:  true,
	}

	req, err := http.NewRequest(http.MethodGet, "http://example.com/abc", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	if _, err = lt.RoundTrip(req); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	out := logBuffer.String()
	if !strings.Contains(out, "> GET /abc") {
		t.Errorf("request line not logged: %q", out)
	}

	if !strings.Contains(out, "< RESPONSE:") {
		t.Errorf("response timing not logged: %q", out)
	}
}

// TestLoggingRoundTripperNilWriter verifies the tripper is a passthrough when
// no writer is configured.
func TestLoggingRoundTripperNilWriter(t *testing.T) {
	lt := &LoggingRoundTripper{
		Transport: &dummyRoundTripper{response: okResponse()},
	}

	req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	resp, err := lt.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want 200", resp.StatusCode)
	}
}

func TestAppendRequestHeadersRoundTripper(t *testing.T) {
	drt := &dummyRoundTripper{response: okResponse()}

	ht := &AppendRequestHeadersRoundTripper{
		Transport: drt,
		Headers: map[string]string{
			"User-Agent": "altyapi/test",
			"Accept":     "application/json",
		},
	}

	req, err := http.NewRequest(http.MethodPost, "http://example.com/query", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	if _, err = ht.RoundTrip(req); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if got := drt.lastReq.Header.Get("User-Agent"); got != "altyapi/test" {
		t.Errorf("User-Agent = %q, want altyapi/test", got)
	}

	if got := drt.lastReq.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
}

func TestNewClientSendsUserAgent(t *testing.T) {
	var gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{
		Timeout:   5 * time.Second,
		UserAgent: "altyapi/1.0",
	})

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if gotUA != "altyapi/1.0" {
		t.Errorf("User-Agent = %q, want altyapi/1.0", gotUA)
	}
}
