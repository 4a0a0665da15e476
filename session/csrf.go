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

package session

import (
	"bytes"

	"golang.org/x/net/html"
)

// csrfToken extracts the CSRF token from a server page. Elements with the
// id "csrf_token" win over the csrf-token meta tag, matching the two
// layouts the server shipped over time. An empty string means the page
// carries no token.
func csrfToken(page []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(page))
	meta := ""
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			return meta
		}
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}

		token := tokenizer.Token()
		attrs := map[string]string{}
		for _, attr := range token.Attr {
			attrs[attr.Key] = attr.Val
		}

		if attrs["id"] == "csrf_token" && attrs["value"] != "" {
			return attrs["value"]
		}
		if token.Data == "meta" && attrs["name"] == "csrf-token" && meta == "" {
			meta = attrs["content"]
		}
	}
}
