package model

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies a failed provider call so the UI can pick the
// right user-visible copy.
type FetchErrorKind string

const (
	// KindNotFound means the provider does not know the requested location.
	KindNotFound FetchErrorKind = "not_found"
	// KindAuth means the API credential is missing or was rejected.
	KindAuth FetchErrorKind = "auth"
	// KindNetwork covers timeouts, DNS failures and refused connections.
	KindNetwork FetchErrorKind = "network"
	// KindParse means the response body did not have the expected shape.
	KindParse FetchErrorKind = "parse"
)

// FetchError is the error type surfaced by every gateway call. Gateways never
// recover from these; the application shell decides what the user sees.
type FetchError struct {
	Kind    FetchErrorKind
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError builds a FetchError wrapping an underlying cause.
func NewFetchError(kind FetchErrorKind, message string, err error) *FetchError {
	return &FetchError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the failure kind from an error chain. Errors that did not
// come from a gateway report KindNetwork, the safest generic bucket.
func KindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindNetwork
}
