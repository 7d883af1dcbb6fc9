// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrLockfileNotFound is returned when the lock file does not exist,
	// which normally means the client is not running.
	ErrLockfileNotFound = errors.New("can not find lockfile")

	// ErrMalformedLockfile is returned when the lock file has fewer than four
	// colon-separated fields or an unusable port.
	ErrMalformedLockfile = errors.New("lockfile is malformed")

	// ErrIO wraps filesystem failures other than a missing lock file.
	ErrIO = errors.New("i/o error")

	// ErrNetworkFailure wraps transport-level request failures.
	ErrNetworkFailure = errors.New("http request error")

	// ErrHeaderConstruction is returned when a credential value cannot be
	// used as an HTTP header value.
	ErrHeaderConstruction = errors.New("failed to build http header")

	// ErrEncoding is returned for malformed JSON or base64 payloads.
	ErrEncoding = errors.New("encoding error")
)

// APIErrorResponse is returned when the local or remote service answers with
// a non-2xx status. Body holds the raw response text for diagnostics.
type APIErrorResponse struct {
	Status int
	Body   string
}

func (e *APIErrorResponse) Error() string {
	return fmt.Sprintf("api returned an error: %d - %s", e.Status, e.Body)
}
