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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSearchIndex(t *testing.T) {
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/searchindices/": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodPost {
				fmt.Fprint(w, `{"objects": [{"id": 9, "name": "filebeat"}], "meta": {}}`)
				return
			}
			fmt.Fprint(w, `{"objects": [{"id": 9, "name": "filebeat", "index_name": "4c2ff"}], "meta": {}}`)
		},
	})
	client := fake.client(t)

	index, err := client.CreateSearchIndex(context.Background(), "filebeat", "4c2ff")

	require.NoError(t, err)
	assert.Equal(t, &SearchIndex{ID: 9, Name: "filebeat", IndexName: "4c2ff"}, index)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, map[string]interface{}{
		"searchindex_name": "filebeat",
		"es_index_name":    "4c2ff",
	}, fake.calls[0].body)
	assert.Equal(t, "/api/v1/searchindices/9/", fake.calls[1].path)
}

func TestCreateSearchIndexEmptyName(t *testing.T) {
	fake := newFakeServer(t, nil)
	client := fake.client(t)

	_, err := client.CreateSearchIndex(context.Background(), "", "4c2ff")

	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestGetSearchIndex(t *testing.T) {
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/searchindices/9/": jsonResponse(`{"objects": [{"id": 9, "name": "filebeat", "index_name": "4c2ff"}], "meta": {}}`),
	})
	client := fake.client(t)

	index, err := client.GetSearchIndex(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, &SearchIndex{ID: 9, Name: "filebeat", IndexName: "4c2ff"}, index)
}

func TestListSearchIndices(t *testing.T) {
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/searchindices/": jsonResponse(`{"objects": [[{"id": 9, "name": "filebeat"}]], "meta": {}}`),
	})
	client := fake.client(t)

	indices, err := client.ListSearchIndices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []SearchIndex{{ID: 9, Name: "filebeat"}}, indices)
}
