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

// Package session creates authenticated HTTP sessions for the Timesketch
// API. It handles the username/password and HTTP Basic authentication
// modes and pins the CSRF token the server hands out on every request.
package session

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// AuthMode selects how New authenticates against the server.
type AuthMode string

const (
	// AuthUserPass posts username and password to the login form.
	AuthUserPass AuthMode = "userpass"
	// AuthHTTPBasic sends HTTP Basic authentication headers.
	AuthHTTPBasic AuthMode = "http-basic"
)

// maxBodySize caps how much of a response body is read into memory.
const maxBodySize = 32 << 20

// Config describes the server and credentials for a new session.
type Config struct {
	// HostURI is the root address of the server, e.g. https://host.
	HostURI string
	// Username and Password authenticate the session.
	Username string
	Password string
	// AuthMode defaults to AuthUserPass.
	AuthMode AuthMode
	// SkipVerify disables TLS certificate verification.
	SkipVerify bool
	// Timeout bounds every request, 30 seconds if unset.
	Timeout time.Duration
}

// Session is an authenticated HTTP session. It carries the session
// cookies and the pinned CSRF token across requests.
type Session struct {
	client   *http.Client
	hostURI  string
	headers  http.Header
	username string
	password string
	basic    bool
}

// New creates a session and authenticates it against the server.
func New(ctx context.Context, config Config) (*Session, error) {
	if config.HostURI == "" {
		return nil, errors.New("host URI cannot be empty")
	}
	mode := config.AuthMode
	if mode == "" {
		mode = AuthUserPass
	}
	if mode != AuthUserPass && mode != AuthHTTPBasic {
		return nil, errors.Errorf("unknown auth mode %s", mode)
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create cookie jar")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.SkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
	}

	session := &Session{
		client:   &http.Client{Jar: jar, Timeout: timeout, Transport: transport},
		hostURI:  strings.TrimRight(config.HostURI, "/"),
		headers:  http.Header{},
		username: config.Username,
		password: config.Password,
		basic:    mode == AuthHTTPBasic,
	}

	if err := session.setCSRFToken(ctx); err != nil {
		return nil, errors.Wrap(err, "could not retrieve CSRF token")
	}
	if mode == AuthUserPass {
		if err := session.login(ctx); err != nil {
			return nil, errors.Wrap(err, "could not authenticate session")
		}
	}
	return session, nil
}

// Get performs an authenticated GET request.
func (s *Session) Get(ctx context.Context, rawURL string, query url.Values) (int, []byte, error) {
	target := rawURL
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return s.do(ctx, http.MethodGet, target, "", nil)
}

// Post performs an authenticated POST request with a JSON body.
func (s *Session) Post(ctx context.Context, rawURL string, payload interface{}) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrap(err, "could not encode request body")
	}
	return s.do(ctx, http.MethodPost, rawURL, "application/json", bytes.NewReader(data))
}

// setCSRFToken retrieves the CSRF token from the server root page and
// pins it as a header on all later requests. Pages without a token are
// left alone, as not every deployment serves one.
func (s *Session) setCSRFToken(ctx context.Context) error {
	_, page, err := s.do(ctx, http.MethodGet, s.hostURI, "", nil)
	if err != nil {
		return err
	}

	token := csrfToken(page)
	if token == "" {
		return nil
	}
	s.headers.Set("X-CSRFToken", token)
	s.headers.Set("Referer", s.hostURI)
	return nil
}

// login posts the credentials to the login form handler, which answers
// with the session cookies.
func (s *Session) login(ctx context.Context) error {
	form := url.Values{"username": {s.username}, "password": {s.password}}
	status, _, err := s.do(ctx, http.MethodPost, s.hostURI+"/login/",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	if status < 200 || status > 399 {
		return errors.Errorf("login failed with status %d", status)
	}
	return nil
}

func (s *Session) do(ctx context.Context, method, target, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "could not create request")
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.basic {
		req.SetBasicAuth(s.username, s.password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, errors.Wrap(err, "could not read response")
	}
	return resp.StatusCode, data, nil
}
