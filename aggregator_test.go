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

func TestGetAggregatorInfo(t *testing.T) {
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/aggregation/info/": jsonResponse(`[{"name": "field_bucket", "description": "Aggregating values of a field"}, {"name": "query_bucket"}]`),
	})
	client := fake.client(t)

	infos, err := client.GetAggregatorInfo(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "field_bucket", infos[0].Name)
	assert.Equal(t, http.MethodGet, fake.calls[0].method)
}

func TestGetAggregatorInfoByName(t *testing.T) {
	// A single aggregator arrives as a bare object and is wrapped into a
	// one element list.
	fake := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/v1/aggregation/info/": jsonResponse(`{"name": "field_bucket", "fields": [{"name": "field", "type": "string"}]}`),
	})
	client := fake.client(t)

	infos, err := client.GetAggregatorInfo(context.Background(), "field_bucket")

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "field_bucket", infos[0].Name)
	require.Len(t, infos[0].Fields, 1)
	assert.Equal(t, "field", infos[0].Fields[0].Name)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, http.MethodPost, fake.calls[0].method)
	assert.Equal(t, map[string]interface{}{"aggregator": "field_bucket"}, fake.calls[0].body)
}
