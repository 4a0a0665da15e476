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
	"fmt"

	"github.com/pkg/errors"

	"github.com/forensicanalysis/timesketch/fetch"
)

// User is a server side user account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Active   bool   `json:"active,omitempty"`
	Admin    bool   `json:"admin,omitempty"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser creates a new user account and fetches it afterwards.
func (c *Client) CreateUser(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}

	body := createUserRequest{Username: username, Password: password}
	payload, err := c.postResource(ctx, "users/", body, fetch.FirstObjectField("id"))
	if err != nil {
		return nil, errors.Wrapf(err, "could not create user %s", username)
	}

	return c.GetUser(ctx, int(payload.Get("objects.0.id").Int()))
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(ctx context.Context, userID int) (*User, error) {
	payload, err := c.FetchResourceData(ctx, fmt.Sprintf("users/%d/", userID), nil)
	if err != nil {
		return nil, err
	}

	user := &User{}
	if err := decodeFirstObject(payload, user); err != nil {
		return nil, errors.Wrapf(err, "could not decode user %d", userID)
	}
	return user, nil
}

// ListUsers returns all user accounts. The server nests the account list
// into the first entry of the objects envelope.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	payload, err := c.FetchResourceData(ctx, "users/", nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeList(payload.Get("objects.0"), &users); err != nil {
		return nil, errors.Wrap(err, "could not decode user listing")
	}
	return users, nil
}
