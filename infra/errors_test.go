// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{name: "too many requests", status: http.StatusTooManyRequests, want: ErrorKindRateLimit},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrorKindQuotaExceeded},
		{name: "forbidden", status: http.StatusForbidden, want: ErrorKindQuotaExceeded},
		{name: "bad request", status: http.StatusBadRequest, want: ErrorKindInvalidRequest},
		{name: "not found", status: http.StatusNotFound, want: ErrorKindNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrorKindNetwork},
		{name: "service unavailable", status: http.StatusServiceUnavailable, want: ErrorKindNetwork},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, want: ErrorKindNetwork},
		{name: "teapot is unknown", status: http.StatusTeapot, want: ErrorKindUnknown},
		{name: "server error is unknown", status: http.StatusInternalServerError, want: ErrorKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyHTTPStatus(tt.status)
			if got.Kind != tt.want {
				t.Errorf("ClassifyHTTPStatus(%d).Kind = %d, want %d", tt.status, got.Kind, tt.want)
			}

			if got.Message == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestClassifyTransportError(t *testing.T) {
	deadline := ClassifyTransportError(context.DeadlineExceeded)
	if deadline.Kind != ErrorKindTimeout {
		t.Errorf("deadline kind = %d, want timeout", deadline.Kind)
	}

	if !IsTimeoutError(deadline) {
		t.Error("IsTimeoutError(deadline) = false")
	}

	plain := ClassifyTransportError(errors.New("connection refused"))
	if plain.Kind != ErrorKindNetwork {
		t.Errorf("plain kind = %d, want network", plain.Kind)
	}

	if !errors.Is(plain, plain.Err) {
		t.Error("classified error does not unwrap to its cause")
	}
}

func TestIsRateLimitError(t *testing.T) {
	if !IsRateLimitError(ClassifyHTTPStatus(http.StatusTooManyRequests)) {
		t.Error("classified 429 not detected as rate limit")
	}

	if !IsRateLimitError(errors.New("upstream said: too many requests")) {
		t.Error("message sniffing failed")
	}

	if IsRateLimitError(errors.New("boom")) {
		t.Error("unrelated error detected as rate limit")
	}
}
