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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	flaws, err := Validate([]byte(zenmapRule))

	require.NoError(t, err)
	assert.Empty(t, flaws)
}

func TestValidateFlawedRules(t *testing.T) {
	tests := []struct {
		name string
		rule string
	}{
		{
			"missing title",
			"logsource:\n  product: linux\ndetection:\n  keywords:\n    - 'x'\n  condition: keywords\n",
		},
		{
			"missing detection",
			"title: No detection\nlogsource:\n  product: linux\n",
		},
		{
			"missing logsource",
			"title: No logsource\ndetection:\n  keywords:\n    - 'x'\n  condition: keywords\n",
		},
		{
			"missing condition",
			"title: No condition\nlogsource:\n  product: linux\ndetection:\n  keywords:\n    - 'x'\n",
		},
		{
			"bad level",
			"title: Bad level\nlogsource:\n  product: linux\ndetection:\n  keywords:\n    - 'x'\n  condition: keywords\nlevel: urgent\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flaws, err := Validate([]byte(tt.rule))

			require.NoError(t, err)
			assert.NotEmpty(t, flaws)
		})
	}
}

func TestValidateInvalidYAML(t *testing.T) {
	_, err := Validate([]byte("title: [unclosed"))
	require.Error(t, err)
}
