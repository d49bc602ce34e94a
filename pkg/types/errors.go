// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error classes shared by every stage. Concrete errors wrap one of these so
// callers can classify with errors.Is.
var (
	// ErrIO marks filesystem failures.
	ErrIO = errors.New("io error")

	// ErrTransport marks network failures and non-2xx HTTP responses.
	ErrTransport = errors.New("transport error")

	// ErrParse marks documents that could not be parsed as PDF.
	ErrParse = errors.New("parse error")
)
