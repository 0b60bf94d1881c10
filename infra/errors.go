// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package infra

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// LookupError represents errors raised at the remote-lookup boundary.
// Providers convert these to TechError results; they never cross the
// Provider interface as Go errors.
type LookupError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// ErrorKind defines the kinds of remote-lookup errors.
type ErrorKind int

const (
	// ErrorKindUnknown unclassified error.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindRateLimit rate limit reached.
	ErrorKindRateLimit
	// ErrorKindQuotaExceeded quota exceeded or access denied.
	ErrorKindQuotaExceeded
	// ErrorKindTimeout connection or deadline timeout.
	ErrorKindTimeout
	// ErrorKindNotFound address not found upstream.
	ErrorKindNotFound
	// ErrorKindInvalidRequest request rejected by the upstream.
	ErrorKindInvalidRequest
	// ErrorKindNetwork transport-level failure.
	ErrorKindNetwork
	// ErrorKindBadResponse response body could not be decoded.
	ErrorKindBadResponse
)

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsTimeoutError checks whether the error is a timeout.
func IsTimeoutError(err error) bool {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind == ErrorKindTimeout
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// IsRateLimitError checks whether the error is a rate limit.
func IsRateLimitError(err error) bool {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind == ErrorKindRateLimit
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429")
}

// ClassifyHTTPStatus maps a non-success HTTP status to a lookup error.
func ClassifyHTTPStatus(statusCode int) *LookupError {
	switch statusCode {
	case http.StatusTooManyRequests: // 429
		return &LookupError{
			Kind:    ErrorKindRateLimit,
			Message: "istek limiti aşıldı",
		}
	case http.StatusUnauthorized, http.StatusForbidden: // 401, 403
		return &LookupError{
			Kind:    ErrorKindQuotaExceeded,
			Message: "kota aşıldı veya erişim reddedildi",
		}
	case http.StatusBadRequest: // 400
		return &LookupError{
			Kind:    ErrorKindInvalidRequest,
			Message: "geçersiz istek",
		}
	case http.StatusNotFound: // 404
		return &LookupError{
			Kind:    ErrorKindNotFound,
			Message: "adres bulunamadı",
		}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return &LookupError{
			Kind:    ErrorKindNetwork,
			Message: fmt.Sprintf("servis kullanılamıyor (kod %d)", statusCode),
		}
	default:
		return &LookupError{
			Kind:    ErrorKindUnknown,
			Message: fmt.Sprintf("HTTP hatası %d", statusCode),
		}
	}
}

// ClassifyTransportError maps a failure of the HTTP round trip itself.
func ClassifyTransportError(err error) *LookupError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &LookupError{
			Kind:    ErrorKindTimeout,
			Message: "zaman aşımı",
			Err:     err,
		}
	}

	return &LookupError{
		Kind:    ErrorKindNetwork,
		Message: "ağ hatası",
		Err:     err,
	}
}
