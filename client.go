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

package timesketch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/forensicanalysis/timesketch/fetch"
)

// apiVersionPrefix is appended to the host URI for every resource.
const apiVersionPrefix = "/api/v1"

// clientVersion identifies this client in version reports.
const clientVersion = "20201013"

// Client talks to a Timesketch server. Every endpoint call is wrapped
// with retry, backoff and JSON validation.
type Client struct {
	apiRoot string
	fetcher *fetch.Fetcher
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger routes client logs to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithPolicy replaces the default retry policy.
func WithPolicy(policy fetch.Policy) Option {
	return func(c *Client) { c.fetcher.Policy = policy }
}

// NewClient creates a client for the server at hostURI using an
// authenticated session, usually created with the session package.
func NewClient(hostURI string, session fetch.Session, options ...Option) (*Client, error) {
	if hostURI == "" {
		return nil, errors.New("host URI cannot be empty")
	}
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	client := &Client{
		apiRoot: strings.TrimRight(hostURI, "/") + apiVersionPrefix,
		fetcher: fetch.New(session),
		logger:  slog.Default(),
	}
	for _, option := range options {
		option(client)
	}
	client.fetcher.Logger = client.logger
	return client, nil
}

// FetchResourceData makes a GET request to the given resource with
// retries. It returns the decoded JSON payload once the server answers
// with a non-empty document.
func (c *Client) FetchResourceData(ctx context.Context, resourceURI string, params url.Values) (gjson.Result, error) {
	request := fetch.Request{Path: c.resourceURL(resourceURI), Query: params}
	return c.fetcher.Do(ctx, request, fetch.NonEmpty())
}

// Version returns the client version and, if the server reports one, the
// backend version.
func (c *Client) Version(ctx context.Context) (string, error) {
	payload, err := c.FetchResourceData(ctx, "version/", nil)
	if err != nil {
		return "", err
	}
	backend := payload.Get("meta.version").String()
	if backend == "" {
		return fmt.Sprintf("API Client: %s", clientVersion), nil
	}
	return fmt.Sprintf("API Client: %s\nTS Backend: %s", clientVersion, backend), nil
}

func (c *Client) resourceURL(resourceURI string) string {
	return c.apiRoot + "/" + strings.TrimLeft(resourceURI, "/")
}

func (c *Client) postResource(ctx context.Context, resourceURI string, body interface{}, validate fetch.Validator) (gjson.Result, error) {
	request := fetch.Request{Path: c.resourceURL(resourceURI), Body: body}
	return c.fetcher.Do(ctx, request, validate)
}

// decodeFirstObject unmarshals objects[0] of a payload into out.
func decodeFirstObject(payload gjson.Result, out interface{}) error {
	object := payload.Get("objects.0")
	if !object.Exists() {
		return errors.New("response contains no objects")
	}
	return errors.Wrap(json.Unmarshal([]byte(object.Raw), out), "could not decode object")
}

// decodeList unmarshals a JSON list into out. Missing lists are treated
// as empty.
func decodeList(list gjson.Result, out interface{}) error {
	if !list.Exists() {
		return nil
	}
	if !list.IsArray() {
		return errors.New("expected a list")
	}
	return errors.Wrap(json.Unmarshal([]byte(list.Raw), out), "could not decode list")
}
