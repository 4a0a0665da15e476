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

package session

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPage = `<html><body>
<form action="/login/" method="POST">
<input id="csrf_token" name="csrf_token" type="hidden" value="IjA4ZDdiNDc2Ii4h">
</form>
</body></html>`

func TestNewUserPassSession(t *testing.T) {
	var loginForm url.Values

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, loginPage)
	})
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		loginForm = r.PostForm
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "0sq2n5"})
	})
	var apiRequest *http.Request
	mux.HandleFunc("/api/v1/sketches/", func(w http.ResponseWriter, r *http.Request) {
		apiRequest = r.Clone(context.Background())
		fmt.Fprint(w, `{"objects": [], "meta": {}}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	sess, err := New(context.Background(), Config{
		HostURI:  server.URL,
		Username: "dev",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, url.Values{"username": {"dev"}, "password": {"secret"}}, loginForm)

	status, body, err := sess.Get(context.Background(), server.URL+"/api/v1/sketches/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"objects": [], "meta": {}}`, string(body))

	// The CSRF token and session cookie travel with every request.
	require.NotNil(t, apiRequest)
	assert.NotEmpty(t, apiRequest.Header.Get("X-CSRFToken"))
	assert.Equal(t, server.URL, apiRequest.Header.Get("Referer"))
	cookie, err := apiRequest.Cookie("session")
	require.NoError(t, err)
	assert.Equal(t, "0sq2n5", cookie.Value)
}

func TestNewBasicAuthSession(t *testing.T) {
	var authorized bool

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/version/", func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		authorized = ok && username == "dev" && password == "secret"
		fmt.Fprint(w, `{"meta": {"version": "20200928"}}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	sess, err := New(context.Background(), Config{
		HostURI:  server.URL,
		Username: "dev",
		Password: "secret",
		AuthMode: AuthHTTPBasic,
	})
	require.NoError(t, err)

	status, _, err := sess.Get(context.Background(), server.URL+"/api/v1/version/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, authorized)
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"empty host", Config{}},
		{"unknown mode", Config{HostURI: "https://example.com", AuthMode: "oauth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(context.Background(), tt.config)
			require.Error(t, err)
		})
	}
}

func TestNewFailsOnRejectedLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := New(context.Background(), Config{
		HostURI:  server.URL,
		Username: "dev",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not authenticate session")
}

func TestPostSendsJSON(t *testing.T) {
	var contentType, body string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/sketches/", func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		fmt.Fprint(w, `{"objects": [{"id": 1}], "meta": {}}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	sess, err := New(context.Background(), Config{HostURI: server.URL, AuthMode: AuthHTTPBasic})
	require.NoError(t, err)

	status, _, err := sess.Post(context.Background(), server.URL+"/api/v1/sketches/",
		map[string]string{"name": "case 42"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"name": "case 42"}`, body)
}

func TestGetEncodesQuery(t *testing.T) {
	var query url.Values

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/tasks/", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"objects": [], "meta": {}}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	sess, err := New(context.Background(), Config{HostURI: server.URL, AuthMode: AuthHTTPBasic})
	require.NoError(t, err)

	_, _, err = sess.Get(context.Background(), server.URL+"/api/v1/tasks/",
		url.Values{"job_id": {"a31f"}})
	require.NoError(t, err)
	assert.Equal(t, "a31f", query.Get("job_id"))
}
