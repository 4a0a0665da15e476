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

// Package fetch issues single logical requests against an authenticated
// session, validates the JSON responses and retries failed attempts with
// exponential backoff until a fixed attempt budget is spent.
package fetch

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Session issues authenticated HTTP requests against the server. A
// session is provided by the caller and only borrowed for the duration of
// one call, the fetcher keeps no state across calls.
type Session interface {
	// Get performs a GET request and returns the status code and body.
	Get(ctx context.Context, url string, query url.Values) (int, []byte, error)
	// Post performs a POST request with a JSON body and returns the
	// status code and body.
	Post(ctx context.Context, url string, body interface{}) (int, []byte, error)
}

// Request describes a single logical resource request. A nil Body selects
// a GET request, any other value is sent as the JSON body of a POST.
type Request struct {
	Path  string
	Query url.Values
	Body  interface{}
}

// Fetcher retries requests against a session according to a policy.
type Fetcher struct {
	Session Session
	Policy  Policy
	Logger  *slog.Logger
}

// New creates a Fetcher with the default policy.
func New(session Session) *Fetcher {
	return &Fetcher{Session: session, Policy: DefaultPolicy}
}

// Do performs the request until the validator accepts a decoded payload
// or the retry budget is exhausted. Every failure mode is treated as
// transient: connection errors, non-20x statuses, undecodable bodies and
// rejected payloads are retried alike.
func (f *Fetcher) Do(ctx context.Context, req Request, validate Validator) (gjson.Result, error) {
	policy := f.Policy.withDefaults()

	attempt := 0
	for {
		attempt++
		// The backoff sleep is the only suspension point besides the
		// round trip itself.
		if attempt > 1 {
			wait := policy.Backoff(attempt)
			f.logger().Info("waiting before next attempt",
				"wait", wait, "url", req.Path)
			if err := policy.sleep(ctx, wait); err != nil {
				return gjson.Result{}, err
			}
		}

		payload, failure := f.attempt(ctx, req, validate)
		if failure == nil {
			return payload, nil
		}

		if attempt >= policy.MaxAttempts {
			failure.Attempts = attempt
			return gjson.Result{}, failure
		}

		f.logger().Warn("request failed, trying again",
			"attempt", attempt, "max", policy.MaxAttempts,
			"url", req.Path, "error", failure.Err)
	}
}

// attempt issues one round trip and classifies the outcome.
func (f *Fetcher) attempt(ctx context.Context, req Request, validate Validator) (gjson.Result, *Error) {
	var (
		status int
		body   []byte
		err    error
	)
	if req.Body != nil {
		status, body, err = f.Session.Post(ctx, req.Path, req.Body)
	} else {
		status, body, err = f.Session.Get(ctx, req.Path, req.Query)
	}

	switch {
	case err != nil:
		return gjson.Result{}, &Error{Kind: KindConnection, Resource: req.Path, Err: err}
	case status < 200 || status > 299:
		return gjson.Result{}, &Error{
			Kind:     KindAPI,
			Resource: req.Path,
			Status:   status,
			Body:     string(body),
			Err:      errors.Errorf("server returned status %d", status),
		}
	case !gjson.ValidBytes(body):
		return gjson.Result{}, &Error{
			Kind:     KindDecode,
			Resource: req.Path,
			Status:   status,
			Err:      errors.New("response body is not valid JSON"),
		}
	}

	payload := gjson.ParseBytes(body)
	if validate != nil {
		if err := validate(payload); err != nil {
			return gjson.Result{}, &Error{
				Kind:     KindValidation,
				Resource: req.Path,
				Status:   status,
				Err:      err,
			}
		}
	}
	return payload, nil
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.Default()
	}
	return f.Logger
}
