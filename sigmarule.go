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

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/forensicanalysis/timesketch/fetch"
)

// SigmaRule is a Sigma detection rule stored on the server.
type SigmaRule struct {
	ID          int    `json:"id,omitempty"`
	RuleUUID    string `json:"rule_uuid,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	RuleYAML    string `json:"rule_yaml,omitempty"`
	Status      string `json:"status,omitempty"`
}

type createSigmaRuleRequest struct {
	RuleYAML string `json:"rule_yaml"`
}

type parseSigmaRuleRequest struct {
	Content string `json:"content"`
}

// ListSigmaRules fetches all Sigma rules stored on the server.
func (c *Client) ListSigmaRules(ctx context.Context) ([]SigmaRule, error) {
	payload, err := c.FetchResourceData(ctx, "sigmarules/", nil)
	if err != nil {
		return nil, err
	}

	var rules []SigmaRule
	if err := decodeList(payload.Get("objects"), &rules); err != nil {
		return nil, errors.Wrap(err, "could not decode rule listing")
	}
	if len(rules) == 0 {
		return nil, errors.New("no rules found")
	}
	return rules, nil
}

// CreateSigmaRule stores a Sigma rule on the server and fetches the
// stored rule afterwards.
func (c *Client) CreateSigmaRule(ctx context.Context, ruleYAML string) (*SigmaRule, error) {
	if ruleYAML == "" {
		return nil, errors.New("no rule yaml given")
	}

	body := createSigmaRuleRequest{RuleYAML: ruleYAML}
	payload, err := c.postResource(ctx, "sigmarules/", body, fetch.FirstObjectField("rule_uuid"))
	if err != nil {
		return nil, errors.Wrap(err, "could not create sigma rule")
	}

	return c.GetSigmaRule(ctx, payload.Get("objects.0.rule_uuid").String())
}

// GetSigmaRule fetches a single Sigma rule by its UUID.
func (c *Client) GetSigmaRule(ctx context.Context, ruleUUID string) (*SigmaRule, error) {
	id, err := uuid.Parse(ruleUUID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rule uuid %s", ruleUUID)
	}

	payload, err := c.FetchResourceData(ctx, fmt.Sprintf("sigmarules/%s/", id), nil)
	if err != nil {
		return nil, err
	}

	rule := &SigmaRule{}
	if err := decodeFirstObject(payload, rule); err != nil {
		return nil, errors.Wrapf(err, "could not decode sigma rule %s", id)
	}
	return rule, nil
}

// ParseSigmaRuleByText lets the server parse the given rule text without
// storing it and returns the parsed rule.
func (c *Client) ParseSigmaRuleByText(ctx context.Context, ruleText string) (*SigmaRule, error) {
	if ruleText == "" {
		return nil, errors.New("no rule text given")
	}

	body := parseSigmaRuleRequest{Content: ruleText}
	payload, err := c.postResource(ctx, "sigmarules/text/", body, fetch.HasObjects())
	if err != nil {
		return nil, errors.Wrap(err, "could not parse sigma rule text")
	}

	rule := &SigmaRule{}
	if err := decodeFirstObject(payload, rule); err != nil {
		return nil, err
	}
	return rule, nil
}
