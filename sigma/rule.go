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

// Package sigma reads and validates Sigma detection rules before they are
// uploaded to a server.
package sigma

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Logsource describes the event stream a rule applies to.
type Logsource struct {
	Product    string `yaml:"product,omitempty" json:"product,omitempty"`
	Category   string `yaml:"category,omitempty" json:"category,omitempty"`
	Service    string `yaml:"service,omitempty" json:"service,omitempty"`
	Definition string `yaml:"definition,omitempty" json:"definition,omitempty"`
}

// Rule is a Sigma detection rule.
type Rule struct {
	Title          string                 `yaml:"title" json:"title"`
	ID             string                 `yaml:"id,omitempty" json:"id,omitempty"`
	Status         string                 `yaml:"status,omitempty" json:"status,omitempty"`
	Description    string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Author         string                 `yaml:"author,omitempty" json:"author,omitempty"`
	References     []string               `yaml:"references,omitempty" json:"references,omitempty"`
	Tags           []string               `yaml:"tags,omitempty" json:"tags,omitempty"`
	Logsource      Logsource              `yaml:"logsource,omitempty" json:"logsource,omitempty"`
	Detection      map[string]interface{} `yaml:"detection,omitempty" json:"detection,omitempty"`
	Fields         []string               `yaml:"fields,omitempty" json:"fields,omitempty"`
	Falsepositives []string               `yaml:"falsepositives,omitempty" json:"falsepositives,omitempty"`
	Level          string                 `yaml:"level,omitempty" json:"level,omitempty"`
}

// Parse reads a single Sigma rule from YAML.
func Parse(data []byte) (*Rule, error) {
	rule := &Rule{}
	if err := yaml.Unmarshal(data, rule); err != nil {
		return nil, errors.Wrap(err, "could not parse rule yaml")
	}
	if rule.Title == "" {
		return nil, errors.New("rule has no title")
	}
	if len(rule.Detection) == 0 {
		return nil, errors.New("rule has no detection")
	}
	return rule, nil
}

// ReadFile parses the Sigma rule file at path.
func ReadFile(fs afero.Fs, path string) (*Rule, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	rule, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse rule file %s", path)
	}
	return rule, nil
}

// ReadDir parses all rule files matching the glob pattern, keyed by path.
func ReadDir(fs afero.Fs, pattern string) (map[string]*Rule, error) {
	matches, err := afero.Glob(fs, pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no rule files match %s", pattern)
	}

	rules := map[string]*Rule{}
	for _, match := range matches {
		rule, err := ReadFile(fs, match)
		if err != nil {
			return nil, err
		}
		rules[match] = rule
	}
	return rules, nil
}
