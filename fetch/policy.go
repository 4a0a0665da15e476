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
	"context"
	"time"
)

// DefaultRetryCount is the attempt budget used when a policy does not set
// its own.
const DefaultRetryCount = 5

// DefaultPolicy tries five times, waiting 0.5s, 1s, 2s and 4s between
// attempts.
var DefaultPolicy = Policy{
	MaxAttempts: DefaultRetryCount,
	BaseDelay:   500 * time.Millisecond,
}

// Policy defines the retry behavior of a Fetcher.
type Policy struct {
	// MaxAttempts is the total number of attempts before giving up.
	MaxAttempts int
	// BaseDelay is the wait before the second attempt. It doubles with
	// every further attempt.
	BaseDelay time.Duration
	// Sleep replaces the wait between attempts, mainly for tests. The
	// default sleep honors context cancellation.
	Sleep func(ctx context.Context, wait time.Duration) error
}

// Backoff returns the wait before the given attempt. The first attempt
// starts immediately, attempt n waits BaseDelay * 2^(n-2).
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return p.BaseDelay << uint(attempt-2)
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts == 0 {
		p.MaxAttempts = DefaultPolicy.MaxAttempts
	}
	if p.BaseDelay == 0 {
		p.BaseDelay = DefaultPolicy.BaseDelay
	}
	return p
}

func (p Policy) sleep(ctx context.Context, wait time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, wait)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
