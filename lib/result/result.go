// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package result

// kind discriminates the three Result variants. Exactly one variant is
// ever populated; there is no "empty" Result in circulation because the
// zero value decodes as a Success carrying T's zero value, and the
// transport never returns a Result it did not construct through one of
// the three constructors.
type kind uint8

const (
	kindSuccess kind = iota
	kindClientError
	kindServerError
)

// Result is the outcome of one remote call. It is a closed tri-state:
// the call succeeded with a value, failed on the calling side
// (credentials, transport, decode), or the server executed it and
// reported failure. Every path through the transport collapses into
// one of these three, so callers never need a separate error-handling
// branch for "network broke" versus "server rejected me".
type Result[T any] struct {
	kind    kind
	value   T
	message string
}

// Success wraps a successfully decoded server reply.
func Success[T any](value T) Result[T] {
	return Result[T]{kind: kindSuccess, value: value}
}

// ClientError reports a problem detected on the calling side: missing
// credentials, a transport fault, or an undecodable response.
func ClientError[T any](message string) Result[T] {
	return Result[T]{kind: kindClientError, message: message}
}

// ServerError reports a failure the remote side executed and returned,
// either in its reply envelope or as a non-OK HTTP status.
func ServerError[T any](message string) Result[T] {
	return Result[T]{kind: kindServerError, message: message}
}

// IsSuccess returns true when the call produced a value.
func (r Result[T]) IsSuccess() bool {
	return r.kind == kindSuccess
}

// Value returns the carried value and true on Success. On either error
// variant it returns T's zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.kind != kindSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Message returns the carried error text. Empty on Success.
func (r Result[T]) Message() string {
	return r.message
}

// Fixed prefixes for the two error variants. The carried message is
// appended verbatim; formatting never interprets it.
const (
	clientErrorPrefix = "There was an error communicating with the Vessel server:"
	serverErrorPrefix = "An error was returned from the Vessel server:"
)

// Format renders a Result for the terminal. The successFormatter is
// applied only on Success; both error variants render their fixed
// prefix followed by the carried message. Pure and total: no side
// effects, no error conditions.
func Format[T any](r Result[T], successFormatter func(T) string) string {
	switch r.kind {
	case kindClientError:
		return clientErrorPrefix + " " + r.message
	case kindServerError:
		return serverErrorPrefix + " " + r.message
	default:
		return successFormatter(r.value)
	}
}
