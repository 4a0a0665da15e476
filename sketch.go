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
	"net/url"
	"strconv"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/forensicanalysis/timesketch/fetch"
)

// Sketch is a named analysis workspace on the server.
type Sketch struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	User        string `json:"user,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type createSketchRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateSketch creates a new sketch and fetches the full resource
// afterwards. An empty description defaults to the name.
func (c *Client) CreateSketch(ctx context.Context, name, description string) (*Sketch, error) {
	if name == "" {
		return nil, errors.New("sketch name cannot be empty")
	}
	if description == "" {
		description = name
	}

	body := createSketchRequest{Name: name, Description: description}
	payload, err := c.postResource(ctx, "sketches/", body, fetch.FirstObjectField("id"))
	if err != nil {
		return nil, errors.Wrapf(err, "could not create sketch %s", name)
	}

	return c.GetSketch(ctx, int(payload.Get("objects.0.id").Int()))
}

// GetSketch fetches a single sketch by its id.
func (c *Client) GetSketch(ctx context.Context, sketchID int) (*Sketch, error) {
	payload, err := c.FetchResourceData(ctx, fmt.Sprintf("sketches/%d/", sketchID), nil)
	if err != nil {
		return nil, err
	}

	sketch := &Sketch{}
	if err := decodeFirstObject(payload, sketch); err != nil {
		return nil, errors.Wrapf(err, "could not decode sketch %d", sketchID)
	}
	return sketch, nil
}

// ListSketchesOptions narrow a sketch listing. Zero fields fall back to
// DefaultListSketchesOptions.
type ListSketchesOptions struct {
	PerPage         int    `structs:"per_page"`
	Scope           string `structs:"scope"`
	IncludeArchived bool   `structs:"include_archived"`
}

// DefaultListSketchesOptions lists the sketches of the calling user, 50
// per page, archived ones included.
var DefaultListSketchesOptions = ListSketchesOptions{
	PerPage:         50,
	Scope:           "user",
	IncludeArchived: true,
}

// ListSketches returns an iterator over all sketches the user can
// access. Pages are fetched lazily while the iterator advances and every
// iterator starts a fresh listing at the first page.
func (c *Client) ListSketches(opts ListSketchesOptions) *SketchIterator {
	if err := mergo.Merge(&opts, DefaultListSketchesOptions); err != nil {
		return &SketchIterator{err: errors.Wrap(err, "could not apply default options")}
	}
	return &SketchIterator{client: c, params: queryValues(opts), page: 1}
}

// SketchIterator walks a paginated sketch listing page by page.
//
//	it := client.ListSketches(timesketch.ListSketchesOptions{})
//	for it.Next(ctx) {
//		fmt.Println(it.Sketch().Name)
//	}
//	if it.Err() != nil { ... }
type SketchIterator struct {
	client  *Client
	params  url.Values
	page    int
	buffer  []Sketch
	current Sketch
	done    bool
	err     error
}

// Next advances the iterator, fetching the next page when the current
// one is drained. It returns false once the listing is exhausted or
// failed.
func (it *SketchIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	for len(it.buffer) == 0 {
		if it.done {
			return false
		}
		if !it.fetchPage(ctx) {
			return false
		}
	}
	it.current = it.buffer[0]
	it.buffer = it.buffer[1:]
	return true
}

// Sketch returns the element the iterator advanced to.
func (it *SketchIterator) Sketch() Sketch { return it.current }

// Err returns the first error the iterator ran into, if any.
func (it *SketchIterator) Err() error { return it.err }

func (it *SketchIterator) fetchPage(ctx context.Context) bool {
	params := url.Values{}
	for key, values := range it.params {
		params[key] = values
	}
	params.Set("page", strconv.Itoa(it.page))

	payload, err := it.client.FetchResourceData(ctx, "sketches/", params)
	if err != nil {
		it.err = err
		return false
	}

	var page []Sketch
	if err := decodeList(payload.Get("objects"), &page); err != nil {
		it.err = errors.Wrap(err, "could not decode sketch listing")
		return false
	}
	it.buffer = append(it.buffer, page...)

	// A missing or falsy next_page ends the listing.
	if next := payload.Get("meta.next_page"); next.Int() > 0 {
		it.page = int(next.Int())
	} else {
		it.done = true
	}
	return true
}
