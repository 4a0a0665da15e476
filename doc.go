// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

// Package timesketch provides a client for the REST API of a Timesketch
// server, a collaborative platform for forensic timeline analysis. The
// client creates and lists sketches, users, search indices and Sigma
// rules and checks the status of background jobs.
//
// The API
//
// The API implements the following conventions:
//     - Resources live below /api/v1/ of the server, e.g. /api/v1/sketches/.
//     - Responses are JSON documents with an "objects" list carrying the resources and a "meta" object carrying extra information.
//     - The user and search index listings nest their resource list into the first entry of "objects".
//     - Create operations answer with a stub in "objects" and the full resource is fetched in a second request.
//     - Listings are paginated, "meta.next_page" names the next page until it is absent.
//
// Every request is retried with exponential backoff before an error is
// returned, as remote servers regularly answer with transient failures
// during data import.
//
// Usage
//
// A client needs an authenticated session:
//     sess, err := session.New(ctx, session.Config{
//         HostURI:  "https://timesketch.example.com",
//         Username: "dev",
//         Password: os.Getenv("TIMESKETCH_PASSWORD"),
//     })
//     ...
//     client, err := timesketch.NewClient("https://timesketch.example.com", sess)
//     ...
//     sketch, err := client.CreateSketch(ctx, "Case 42", "Intrusion on hr laptop")
package timesketch
