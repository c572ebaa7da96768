package llm

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// classifyStatus maps the HTTP status of a failed provider call onto the
// package error types. Status 0 means no response was received.
func classifyStatus(status int, retryAfter time.Duration, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{RetryAfter: retryAfter, Err: err}
	case status == http.StatusRequestTimeout:
		return &ErrProviderUnavailable{Err: err}
	case status >= 400 && status < 500:
		return &ErrRequestRejected{Status: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// retryAfter reads a Retry-After header given in whole seconds. HTTP-date
// values and garbage yield zero, leaving the wait to the backoff schedule.
func retryAfter(h http.Header) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
