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

package sigma

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/qri-io/jsonschema"
	"gopkg.in/yaml.v3"
)

var ruleSchema = &jsonschema.Schema{}

func init() {
	if err := json.Unmarshal([]byte(ruleSchemaJSON), ruleSchema); err != nil {
		panic(err)
	}
}

// Validate checks a Sigma rule in YAML form against the rule schema and
// returns the flaws found. A rule with flaws should not be uploaded.
func Validate(data []byte) ([]string, error) {
	var rule interface{}
	if err := yaml.Unmarshal(data, &rule); err != nil {
		return nil, errors.Wrap(err, "could not parse rule yaml")
	}

	jsonData, err := json.Marshal(rule)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert rule to json")
	}

	keyErrors, err := ruleSchema.ValidateBytes(context.Background(), jsonData)
	if err != nil {
		return nil, err
	}

	var flaws []string
	for _, keyError := range keyErrors {
		flaws = append(flaws, fmt.Sprintf("failed to validate rule: %s", keyError))
	}
	return flaws, nil
}
