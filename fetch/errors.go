/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

package fetch

import "fmt"

// Kind classifies why a request failed. All kinds are retried alike, the
// kind is surfaced so callers can branch without parsing messages.
type Kind int

const (
	// KindConnection means the transport could not complete the round trip.
	KindConnection Kind = iota + 1
	// KindAPI means the server answered with a status outside the 20x range.
	KindAPI
	// KindDecode means the response body could not be parsed as JSON.
	KindDecode
	// KindValidation means the decoded payload was rejected by the validator.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection error"
	case KindAPI:
		return "API error"
	case KindDecode:
		return "decode error"
	case KindValidation:
		return "validation error"
	default:
		return "unknown error"
	}
}

// Error is returned once the retry budget of a request is spent. It
// carries the last observed failure.
type Error struct {
	Kind     Kind
	Resource string
	Attempts int
	Status   int    // last HTTP status, zero if no response arrived
	Body     string // last response body, kept for diagnostics
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s for request %s after %d attempts", e.Kind, e.Resource, e.Attempts)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the last underlying failure.
func (e *Error) Unwrap() error { return e.Err }
