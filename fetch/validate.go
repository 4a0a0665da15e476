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

package fetch

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Validator inspects a successfully decoded payload and reports why it is
// unacceptable. Returning nil accepts the payload.
type Validator func(payload gjson.Result) error

// NonEmpty rejects payloads that decode to null, false, zero, an empty
// string or an empty object or array.
func NonEmpty() Validator {
	return func(payload gjson.Result) error {
		if falsy(payload) {
			return errors.New("response contains no data")
		}
		return nil
	}
}

// HasObjects requires a non-empty 'objects' list in the payload.
func HasObjects() Validator {
	return func(payload gjson.Result) error {
		objects := payload.Get("objects")
		if !objects.Exists() || falsy(objects) {
			return errors.New("response contains no objects")
		}
		return nil
	}
}

// FirstObjectField requires the given field on the first entry of the
// 'objects' list, the shape create operations answer with.
func FirstObjectField(field string) Validator {
	return func(payload gjson.Result) error {
		if !payload.Get("objects.0." + field).Exists() {
			return errors.Errorf("response contains no objects[0].%s", field)
		}
		return nil
	}
}

func falsy(payload gjson.Result) bool {
	switch payload.Type {
	case gjson.Null:
		return true
	case gjson.False:
		return true
	case gjson.Number:
		return payload.Num == 0
	case gjson.String:
		return payload.Str == ""
	case gjson.JSON:
		empty := true
		payload.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	}
	return false
}
