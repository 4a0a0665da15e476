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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks(t *testing.T) {
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/tasks/": jsonResponse(`{"objects": [{"task_id": "a31f", "name": "plaso_import", "state": "SUCCESS", "successful": true}], "meta": {}}`),
	})
	client := fake.client(t)

	tasks, err := client.ListTasks(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "plaso_import", tasks[0].Name)
	assert.True(t, tasks[0].Successful)
	assert.Empty(t, fake.calls[0].query.Get("job_id"))
}

func TestListTasksForJob(t *testing.T) {
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/tasks/": jsonResponse(`{"objects": [{"task_id": "a31f", "state": "PENDING"}], "meta": {}}`),
	})
	client := fake.client(t)

	tasks, err := client.ListTasks(context.Background(), "a31f")

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "PENDING", tasks[0].State)
	assert.Equal(t, "a31f", fake.calls[0].query.Get("job_id"))
}
