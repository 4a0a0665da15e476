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

// SearchIndex is a named reference to an indexed data source.
type SearchIndex struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IndexName string `json:"index_name,omitempty"`
}

type createSearchIndexRequest struct {
	SearchIndexName string `json:"searchindex_name"`
	ESIndexName     string `json:"es_index_name"`
}

// CreateSearchIndex registers an index of the datastore backend under a
// name and fetches the full resource afterwards.
func (c *Client) CreateSearchIndex(ctx context.Context, name, indexName string) (*SearchIndex, error) {
	if name == "" {
		return nil, errors.New("search index name cannot be empty")
	}

	body := createSearchIndexRequest{SearchIndexName: name, ESIndexName: indexName}
	payload, err := c.postResource(ctx, "searchindices/", body, fetch.FirstObjectField("id"))
	if err != nil {
		return nil, errors.Wrapf(err, "could not create search index %s", name)
	}

	return c.GetSearchIndex(ctx, int(payload.Get("objects.0.id").Int()))
}

// GetSearchIndex fetches a single search index by id.
func (c *Client) GetSearchIndex(ctx context.Context, indexID int) (*SearchIndex, error) {
	payload, err := c.FetchResourceData(ctx, fmt.Sprintf("searchindices/%d/", indexID), nil)
	if err != nil {
		return nil, err
	}

	index := &SearchIndex{}
	if err := decodeFirstObject(payload, index); err != nil {
		return nil, errors.Wrapf(err, "could not decode search index %d", indexID)
	}
	return index, nil
}

// ListSearchIndices returns all search indices the user can access. Like
// the user listing, the server nests the list into objects[0].
func (c *Client) ListSearchIndices(ctx context.Context) ([]SearchIndex, error) {
	payload, err := c.FetchResourceData(ctx, "searchindices/", nil)
	if err != nil {
		return nil, err
	}

	var indices []SearchIndex
	if err := decodeList(payload.Get("objects.0"), &indices); err != nil {
		return nil, errors.Wrap(err, "could not decode search index listing")
	}
	return indices, nil
}
