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

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/forensicanalysis/timesketch/fetch"
)

// AggregatorField describes one parameter of an aggregator.
type AggregatorField struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// AggregatorInfo describes an aggregator available on the server.
type AggregatorInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Fields      []AggregatorField `json:"fields,omitempty"`
}

type aggregatorInfoRequest struct {
	Aggregator string `json:"aggregator"`
}

// GetAggregatorInfo returns information about available aggregators. If
// name is empty all aggregators are listed. This endpoint answers with a
// bare document instead of the usual objects envelope: a single
// aggregator arrives as an object and is wrapped into a one element
// list.
func (c *Client) GetAggregatorInfo(ctx context.Context, name string) ([]AggregatorInfo, error) {
	var payload gjson.Result
	var err error
	if name == "" {
		payload, err = c.FetchResourceData(ctx, "aggregation/info/", nil)
	} else {
		body := aggregatorInfoRequest{Aggregator: name}
		payload, err = c.postResource(ctx, "aggregation/info/", body, fetch.NonEmpty())
	}
	if err != nil {
		return nil, err
	}

	if payload.IsObject() {
		info := AggregatorInfo{}
		if err := json.Unmarshal([]byte(payload.Raw), &info); err != nil {
			return nil, errors.Wrap(err, "could not decode aggregator info")
		}
		return []AggregatorInfo{info}, nil
	}

	var infos []AggregatorInfo
	if err := decodeList(payload, &infos); err != nil {
		return nil, errors.Wrap(err, "could not decode aggregator info")
	}
	return infos, nil
}
