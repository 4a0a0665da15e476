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
	"net/url"

	"github.com/pkg/errors"
)

// Task reports the status of a background job on the server.
type Task struct {
	TaskID     string `json:"task_id"`
	Name       string `json:"name,omitempty"`
	State      string `json:"state,omitempty"`
	Result     string `json:"result,omitempty"`
	Successful bool   `json:"successful,omitempty"`
}

// ListTasks returns the status of outstanding background jobs. A
// non-empty jobID narrows the listing to that job.
func (c *Client) ListTasks(ctx context.Context, jobID string) ([]Task, error) {
	var params url.Values
	if jobID != "" {
		params = url.Values{"job_id": []string{jobID}}
	}

	payload, err := c.FetchResourceData(ctx, "tasks/", params)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := decodeList(payload.Get("objects"), &tasks); err != nil {
		return nil, errors.Wrap(err, "could not decode task listing")
	}
	return tasks, nil
}
